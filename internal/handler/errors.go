package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-shop-api/internal/apperr"
)

// statusFromError maps the error taxonomy to HTTP status codes. Anything
// outside the taxonomy is treated as internal.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrDuplicateEntry),
		errors.Is(err, apperr.ErrEmptyFile),
		errors.Is(err, apperr.ErrUnsupportedMimeType),
		errors.Is(err, apperr.ErrUnsupportedExtension):
		return fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrInternal):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
}
