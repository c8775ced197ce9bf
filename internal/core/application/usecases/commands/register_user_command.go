package commands

import (
	"errors"
	"fmt"
	"strings"

	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"
)

// MinPasswordLength applies to registration and password changes.
const MinPasswordLength = 6

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand signs up a new customer. There is deliberately no role
// field: every self-registered account starts as a customer.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	fullname string
	email    string
	password string
	phone    string
	address  string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(fullname, email, password, phone, address string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		fullname: strings.TrimSpace(fullname),
		email:    user.NormalizeEmail(email),
		phone:    strings.TrimSpace(phone),
		address:  strings.TrimSpace(address),
		guard:    guard.NewConstructorGuard(),
	}

	var errList []error
	if cmd.fullname == "" {
		errList = append(errList, errs.NewValueIsRequiredError("fullname"))
	}
	if cmd.email == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if err := validatePassword("password", password); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.password = password
	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Fullname() string { return c.fullname }
func (c RegisterUserCommand) Email() string    { return c.email }
func (c RegisterUserCommand) Password() string { return c.password }
func (c RegisterUserCommand) Phone() string    { return c.phone }
func (c RegisterUserCommand) Address() string  { return c.address }

func validatePassword(param, password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError(param)
	}
	if len(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			param,
			fmt.Errorf("must be at least %d characters", MinPasswordLength),
		)
	}
	return nil
}
