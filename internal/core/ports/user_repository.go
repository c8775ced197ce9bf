package ports

import (
	"context"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/user"
)

type UserRepository interface {
	// Add fails with errs.ObjectAlreadyExistsError when the e-mail is taken.
	Add(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
