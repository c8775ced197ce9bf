package ports

import (
	"time"

	"printdrop/internal/core/domain/model/kernel"
)

// TokenIssuer mints bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID kernel.UUID) (token string, expiresAt time.Time, err error)
}

// TokenVerifier resolves a bearer token to the user it was issued for.
// Invalid or expired tokens yield an errs.UnauthenticatedError.
type TokenVerifier interface {
	Verify(token string) (kernel.UUID, error)
}

// PasswordHasher hashes and checks user passwords.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}
