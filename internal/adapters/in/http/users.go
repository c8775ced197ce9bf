package http

import (
	"net/http"

	"printdrop/internal/core/application/usecases/commands"
	"printdrop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type RegisterUserRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// RegisterUser handles POST /api/v1/users/register. Every new account is a
// customer; a role field in the body is ignored.
func (s *Server) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(req.Fullname, req.Email, req.Password, req.Phone, req.Address)
	if err != nil {
		return err
	}
	u, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userResponse(u))
}

// LoginUser handles POST /api/v1/users/login.
func (s *Server) LoginUser(c echo.Context) error {
	var req LoginUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginUserCommand(req.Email, req.Password)
	if err != nil {
		return err
	}
	result, err := s.handlers.LoginUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse(result))
}

// CurrentUser handles GET /api/v1/users/current-user.
func (s *Server) CurrentUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCurrentUserQuery(actor)
	if err != nil {
		return err
	}
	view, err := s.handlers.CurrentUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userViewResponse(view))
}

// ChangePassword handles POST /api/v1/users/change-password.
func (s *Server) ChangePassword(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req ChangePasswordRequest
	if err = c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewChangePasswordCommand(actor, req.OldPassword, req.NewPassword)
	if err != nil {
		return err
	}
	if err = s.handlers.ChangePassword.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// PromoteUser handles PATCH /api/v1/admin/users/:id/promote.
func (s *Server) PromoteUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	userID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewPromoteUserCommand(actor, userID)
	if err != nil {
		return err
	}
	u, err := s.handlers.PromoteUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse(u))
}

// ListUsers handles GET /api/v1/admin/users.
func (s *Server) ListUsers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListUsersQuery(actor)
	if err != nil {
		return err
	}
	views, err := s.handlers.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mapSlice(views, userViewResponse))
}
