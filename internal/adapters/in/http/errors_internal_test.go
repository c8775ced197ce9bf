package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"printdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"echo error", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"), http.StatusRequestEntityTooLarge},
		{"unauthenticated", errs.NewUnauthenticatedError("expired"), http.StatusUnauthorized},
		{"access denied", errs.NewAccessDeniedError("pick order", "not a courier"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order", "1"), http.StatusNotFound},
		{"already exists", errs.NewObjectAlreadyExistsError("email", "a@b.c"), http.StatusConflict},
		{"required", errs.NewValueIsRequiredError("customerName"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("paymentType"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("copies", 0, 1, 100), http.StatusBadRequest},
		{"state", errs.NewStateIsInvalidError("order", "already picked"), http.StatusBadRequest},
		{"dependency", errs.NewDependencyFailedError("emailjs", errors.New("timeout")), http.StatusBadGateway},
		{"wrapped", fmt.Errorf("handle: %w", errs.NewObjectNotFoundError("document", "2")), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
