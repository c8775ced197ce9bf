package user

import (
	"fmt"

	"printdrop/internal/pkg/errs"
)

// Role determines which operations a user may perform.
type Role string

const (
	Customer Role = "customer"
	Courier  Role = "courier"
	Admin    Role = "admin"
)

// RoleFromString parses a stored role value.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate reports whether the role is one of customer, courier, admin.
func (r Role) Validate() error {
	switch r {
	case Customer, Courier, Admin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
