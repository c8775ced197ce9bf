// Package identity issues and verifies bearer tokens and hashes passwords.
package identity

import (
	"time"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const minSecretLength = 16

// TokenService signs HS256 JWTs carrying the user ID in sub and the expiry
// in exp. Tokens signed with any other method are rejected.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, errs.NewValueIsOutOfRangeError("token secret length", len(secret), minSecretLength, "unbounded")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("token ttl")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *TokenService) Issue(userID kernel.UUID) (string, time.Time, error) {
	if err := userID.Validate(); err != nil {
		return "", time.Time{}, err
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errs.NewDependencyFailedError("token signer", err)
	}
	return signed, expiresAt, nil
}

func (s *TokenService) Verify(token string) (kernel.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, s.key,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthenticatedError(err.Error())
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthenticatedError("malformed token subject")
	}
	return userID, nil
}

func (s *TokenService) key(*jwt.Token) (any, error) {
	return s.secret, nil
}
