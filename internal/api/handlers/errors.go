package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clinic-record-service/internal/domain/entities"
)

var validate = validator.New()

// parseRequest decodes the JSON body into req and enforces its validate tags.
// Failures are reported as validation errors.
func parseRequest(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return entities.NewValidationError("", "could not parse request: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return entities.NewValidationError("", err.Error())
	}
	return nil
}

// respondError maps domain errors onto HTTP status codes.
func respondError(c *fiber.Ctx, err error) error {
	var verr *entities.ValidationError
	var rerr *entities.ReferenceError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
	case errors.As(err, &rerr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": rerr.Error(), "id": rerr.ID})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
