package handlers

import (
	"errors"
	"log"

	"wishlists/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError translates the error taxonomy into an HTTP response:
// validation failures map to 400, missing resources to 404, ownership
// violations to 403, anything else to 500.
func respondError(c *fiber.Ctx, err error) error {
	var (
		validationErr *models.ValidationError
		notFoundErr   *models.NotFoundError
		forbiddenErr  *models.ForbiddenError
	)

	status := fiber.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		status = fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = fiber.StatusNotFound
	case errors.As(err, &forbiddenErr):
		status = fiber.StatusForbidden
	}

	if status == fiber.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  status,
		"message": err.Error(),
	})
}
