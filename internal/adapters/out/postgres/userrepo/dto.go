// Package userrepo persists user accounts with GORM.
package userrepo

import (
	"time"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the row shape of the users table.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fullname     string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash []byte
	Role         string
	Phone        string
	Address      string
	CreatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Fullname:     u.Fullname(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Phone:        u.Phone(),
		Address:      u.Address(),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Fullname, dto.Email, dto.PasswordHash, role, dto.Phone, dto.Address, dto.CreatedAt)
}
