package commands

import (
	"context"
	"errors"

	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	actor       user.Actor
	oldPassword string
	newPassword string

	guard guard.ConstructorGuard
}

func NewChangePasswordCommand(actor user.Actor, oldPassword, newPassword string) (ChangePasswordCommand, error) {
	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, err)
	}
	if oldPassword == "" {
		errList = append(errList, errs.NewValueIsRequiredError("oldPassword"))
	}
	if err := validatePassword("newPassword", newPassword); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return ChangePasswordCommand{}, err
	}

	return ChangePasswordCommand{
		actor:       actor,
		oldPassword: oldPassword,
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

type ChangePasswordCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	hasher     ports.PasswordHasher
}

func NewChangePasswordCommandHandler(uowFactory ports.UnitOfWorkFactory, hasher ports.PasswordHasher) *ChangePasswordCommandHandler {
	return &ChangePasswordCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

// Handle replaces the caller's password after checking the old one.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	u, err := repo.Get(ctx, cmd.actor.ID())
	if err != nil {
		return err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.oldPassword); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("oldPassword", errors.New("does not match"))
	}

	hash, err := h.hasher.Hash(cmd.newPassword)
	if err != nil {
		return err
	}
	if err = u.ChangePasswordHash(hash); err != nil {
		return err
	}

	if err = repo.Update(ctx, u); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
