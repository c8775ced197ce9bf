package order

import (
	"fmt"

	"printdrop/internal/pkg/errs"
)

// PaymentType is how the customer settles the order.
type PaymentType string

const (
	Cash   PaymentType = "cash"
	Online PaymentType = "online"
)

// PaymentTypeFromString parses "cash" or "online".
func PaymentTypeFromString(s string) (PaymentType, error) {
	pt := PaymentType(s)
	if err := pt.Validate(); err != nil {
		return "", err
	}
	return pt, nil
}

func (p PaymentType) Validate() error {
	if p != Cash && p != Online {
		return errs.NewValueIsInvalidErrorWithCause("paymentType", fmt.Errorf("%q is not one of cash, online", string(p)))
	}
	return nil
}

func (p PaymentType) String() string {
	return string(p)
}
