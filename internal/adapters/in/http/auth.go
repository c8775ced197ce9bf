package http

import (
	"errors"
	"strings"

	"printdrop/internal/core/domain/model/user"
	"printdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// authenticate resolves the bearer token to a stored user. The role used for
// authorization is always the stored one.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return errs.NewUnauthenticatedError("missing bearer token")
		}

		userID, err := s.tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			return err
		}

		u, err := s.users.Get(c.Request().Context(), userID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewUnauthenticatedError("user no longer exists")
		}
		if err != nil {
			return err
		}

		c.Set(actorKey, user.ActorOf(u))
		return next(c)
	}
}

func actorFrom(c echo.Context) (user.Actor, error) {
	actor, ok := c.Get(actorKey).(user.Actor)
	if !ok {
		return user.Actor{}, errs.NewUnauthenticatedError("request is not authenticated")
	}
	return actor, nil
}
