package http

import (
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// uuidParam binds a required simple-style path parameter.
func uuidParam(c echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// parseUUIDs parses body ids; an invalid entry fails the whole list.
func parseUUIDs(param string, values []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(values))
	for _, v := range values {
		id, err := kernel.UUIDFromString(v)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
