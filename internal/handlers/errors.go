package handlers

import (
	"errors"

	"github.com/equipe-centaurus/achados-backend/internal/dto"
	"github.com/equipe-centaurus/achados-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Storage failures come back as 503 so clients know a retry may succeed;
// a wrong password is 403, distinct from 404, and neither reveals more
// than the caller already knows.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrItemNotFound), errors.Is(err, services.ErrReportNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrWrongPassword):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrDuplicateReport), errors.Is(err, services.ErrReportResolved):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrStorage):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Storage temporarily unavailable, try again",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
