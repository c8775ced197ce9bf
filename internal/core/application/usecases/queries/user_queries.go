package queries

import (
	"context"
	"database/sql"
	"errors"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/core/domain/services"
	"printdrop/internal/pkg/errs"
	"printdrop/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
	ErrGetCurrentUserQueryIsNotConstructed = errors.New(
		"GetCurrentUserQuery must be created via NewGetCurrentUserQuery constructor",
	)
)

const selectUsers = `
	SELECT id, fullname, email, role, phone, address, created_at
	FROM users
`

// ListUsersQuery is the admin listing of every account, newest first.
type ListUsersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewListUsersQuery(actor user.Actor) (ListUsersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

type ListUsersQueryHandler struct {
	db   *gorm.DB
	gate services.AccessGate
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db, gate: services.NewAccessGate()}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.Authorize(query.actor.Role(), services.OpListUsers); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectUsers + "ORDER BY created_at DESC, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserView, 0)
	for rows.Next() {
		u, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetCurrentUserQuery returns the caller's own profile.
type GetCurrentUserQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

func NewGetCurrentUserQuery(actor user.Actor) (GetCurrentUserQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCurrentUserQuery{}, err
	}
	return GetCurrentUserQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCurrentUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentUserQueryIsNotConstructed)
}

type GetCurrentUserQueryHandler struct {
	db *gorm.DB
}

func NewGetCurrentUserQueryHandler(db *gorm.DB) GetCurrentUserQueryHandler {
	return GetCurrentUserQueryHandler{db: db}
}

func (h GetCurrentUserQueryHandler) Handle(ctx context.Context, query GetCurrentUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	row := h.db.WithContext(ctx).Raw(selectUsers+"WHERE id = ?", query.actor.ID().Bytes()).Row()
	if err := row.Err(); err != nil {
		return UserView{}, err
	}

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return UserView{}, errs.NewObjectNotFoundError("user", query.actor.ID().String())
	}
	if err != nil {
		return UserView{}, err
	}
	return u, nil
}

func scanUser(s scanner) (UserView, error) {
	var (
		view UserView
		id   uuid.UUID
	)
	err := s.Scan(&id, &view.Fullname, &view.Email, &view.Role, &view.Phone, &view.Address, &view.CreatedAt)
	if err != nil {
		return UserView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return UserView{}, err
	}
	return view, nil
}
