package commands

import (
	"context"
	"errors"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/core/domain/services"
	"printdrop/internal/core/ports"
	"printdrop/internal/pkg/guard"
)

var ErrPromoteUserCommandIsNotConstructed = errors.New(
	"PromoteUserCommand must be created via NewPromoteUserCommand constructor",
)

// PromoteUserCommand asks an admin-only promotion of a customer to courier.
type PromoteUserCommand struct { //nolint:recvcheck //using for validation
	actor  user.Actor
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPromoteUserCommand(actor user.Actor, userID kernel.UUID) (PromoteUserCommand, error) {
	if err := errors.Join(actor.Validate(), userID.Validate()); err != nil {
		return PromoteUserCommand{}, err
	}
	return PromoteUserCommand{actor: actor, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c PromoteUserCommand) Validate() error {
	return c.guard.Validate(ErrPromoteUserCommandIsNotConstructed)
}

type PromoteUserCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	gate       services.AccessGate
}

func NewPromoteUserCommandHandler(uowFactory ports.UnitOfWorkFactory) *PromoteUserCommandHandler {
	return &PromoteUserCommandHandler{uowFactory: uowFactory, gate: services.NewAccessGate()}
}

// Handle returns the promoted user. Missing users are not found, couriers
// and admins are rejected with a state error.
func (h *PromoteUserCommandHandler) Handle(ctx context.Context, cmd PromoteUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(cmd.actor.Role(), services.OpPromoteUser); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	u, err := repo.Get(ctx, cmd.userID)
	if err != nil {
		return nil, err
	}
	if err = u.PromoteToCourier(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, u); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
