// Package pgtest starts a throwaway PostgreSQL container with the service
// schema applied. It is used by integration tests only.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"printdrop/internal/adapters/out/postgres/migrations"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/user"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a running container plus a migrated GORM connection.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and applies the migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}
	if err = migrations.Up(ctx, sqlDB); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Truncate empties every table between tests.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE order_documents, orders, documents, users CASCADE").Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	return d.Container.Terminate(ctx)
}

// InsertUser stores a user row directly and returns it.
func (d *Database) InsertUser(ctx context.Context, role user.Role) (*user.User, error) {
	id := kernel.NewUUID()
	email := fmt.Sprintf("%s@example.com", id.String()[:8])
	u, err := user.RestoreUser(id, "User "+id.String()[:4], email, []byte("hash"), role, "98450", "MG Road", time.Now().UTC())
	if err != nil {
		return nil, err
	}

	err = d.DB.WithContext(ctx).Exec(
		`INSERT INTO users (id, fullname, email, password_hash, role, phone, address, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID().Bytes(), u.Fullname(), u.Email(), u.PasswordHash(), u.Role().String(),
		u.Phone(), u.Address(), u.CreatedAt(),
	).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}
