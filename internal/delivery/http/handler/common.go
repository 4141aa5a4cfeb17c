package handler

import (
	"errors"

	"job-portal/internal/access"
	"job-portal/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapAccessError handles gate denials; returns false when err is not one.
func mapAccessError(err error) (error, bool) {
	switch {
	case errors.Is(err, access.ErrUnauthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err), true
	case errors.Is(err, access.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", err), true
	default:
		return nil, false
	}
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", err)
	}
	return id, nil
}
