package commands

import (
	"context"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/core/ports"
)

type RegisterUserCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory ports.UnitOfWorkFactory, hasher ports.PasswordHasher) *RegisterUserCommandHandler {
	return &RegisterUserCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

// Handle stores a new customer. A taken e-mail surfaces as the repository's
// ObjectAlreadyExistsError.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.Fullname(), cmd.Email(), hash, cmd.Phone(), cmd.Address())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, u); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
