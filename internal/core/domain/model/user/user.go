// Package user models the people using the platform: customers placing orders,
// couriers delivering them and admins overseeing both.
//
// A user always starts as a customer. The role is never taken from client input;
// only an admin promotion changes it.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the aggregate root for an account.
type User struct {
	id           kernel.UUID
	fullname     string
	email        string
	passwordHash []byte
	role         Role
	phone        string
	address      string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser registers a customer account. passwordHash must already be hashed.
func NewUser(
	id kernel.UUID,
	fullname string,
	email string,
	passwordHash []byte,
	phone string,
	address string,
) (*User, error) {
	return RestoreUser(id, fullname, email, passwordHash, Customer, phone, address, time.Now().UTC())
}

// RestoreUser rebuilds a User from persistence.
func RestoreUser(
	id kernel.UUID,
	fullname string,
	email string,
	passwordHash []byte,
	role Role,
	phone string,
	address string,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone:     strings.TrimSpace(phone),
		address:   strings.TrimSpace(address),
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setFullname(fullname),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// NormalizeEmail lower-cases and trims an address the way it is stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Fullname() string {
	return u.fullname
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() []byte {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Address() string {
	return u.address
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// PromoteToCourier turns a customer into a courier. Couriers and admins
// cannot be promoted.
func (u *User) PromoteToCourier() error {
	switch u.role {
	case Customer:
		u.role = Courier
		return nil
	case Courier:
		return errs.NewStateIsInvalidError("user", "user is already a courier")
	default:
		return errs.NewStateIsInvalidError("user", fmt.Sprintf("a user with role %s cannot be promoted to courier", u.role))
	}
}

// ChangePasswordHash replaces the stored hash after the old password was checked.
func (u *User) ChangePasswordHash(hash []byte) error {
	return u.setPasswordHash(hash)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setFullname(fullname string) error {
	fullname = strings.TrimSpace(fullname)
	if fullname == "" {
		return errs.NewValueIsRequiredError("fullname")
	}
	u.fullname = fullname
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an e-mail address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash []byte) error {
	if len(hash) == 0 {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
