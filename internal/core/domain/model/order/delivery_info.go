package order

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"printdrop/internal/pkg/errs"
)

// DeliveryInfo is the delivery address and the customer contact details,
// copied onto the order when it is placed.
type DeliveryInfo struct {
	address       string
	customerName  string
	customerPhone string
	customerEmail string
}

// NewDeliveryInfo validates the snapshot. Address and name are mandatory;
// phone and e-mail are optional, but an e-mail must be well formed.
func NewDeliveryInfo(address, customerName, customerPhone, customerEmail string) (DeliveryInfo, error) {
	info := DeliveryInfo{
		address:       strings.TrimSpace(address),
		customerName:  strings.TrimSpace(customerName),
		customerPhone: strings.TrimSpace(customerPhone),
		customerEmail: strings.ToLower(strings.TrimSpace(customerEmail)),
	}

	if err := info.validate(); err != nil {
		return DeliveryInfo{}, err
	}
	return info, nil
}

func (d DeliveryInfo) Address() string {
	return d.address
}

func (d DeliveryInfo) CustomerName() string {
	return d.customerName
}

func (d DeliveryInfo) CustomerPhone() string {
	return d.customerPhone
}

func (d DeliveryInfo) CustomerEmail() string {
	return d.customerEmail
}

func (d DeliveryInfo) validate() error {
	var errList []error

	if d.address == "" {
		errList = append(errList, errs.NewValueIsRequiredError("deliveryAddress"))
	}
	if d.customerName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customerName"))
	}
	if d.customerEmail != "" {
		if _, err := mail.ParseAddress(d.customerEmail); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"customerEmail",
				fmt.Errorf("%q is not an e-mail address", d.customerEmail),
			))
		}
	}

	return errors.Join(errList...)
}
