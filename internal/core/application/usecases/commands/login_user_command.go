package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginUserCommand(email, password string) (LoginUserCommand, error) {
	var errList []error
	if strings.TrimSpace(email) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return LoginUserCommand{}, err
	}

	return LoginUserCommand{
		email:    user.NormalizeEmail(email),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

// LoginResult is the issued bearer token and the account it belongs to.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

// LoginUserCommandHandler checks credentials and issues a token. Unknown
// e-mails and wrong passwords produce the same error.
type LoginUserCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewLoginUserCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) *LoginUserCommandHandler {
	return &LoginUserCommandHandler{uowFactory: uowFactory, hasher: hasher, issuer: issuer}
}

func (h *LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	u, err := h.uowFactory.Create().UserRepository().GetByEmail(ctx, cmd.email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, errs.NewUnauthenticatedError("invalid e-mail or password")
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.password); err != nil {
		return LoginResult{}, errs.NewUnauthenticatedError("invalid e-mail or password")
	}

	token, expiresAt, err := h.issuer.Issue(u.ID())
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, ExpiresAt: expiresAt, User: u}, nil
}
