package routes

import (
	"errors"

	"github.com/farebox/farebox/pkg/tmf"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, tmf.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, tmf.ErrInvalidArgument):
		status = fiber.StatusBadRequest
	case errors.Is(err, tmf.ErrInvalidState):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, tmf.ErrConflict):
		status = fiber.StatusConflict
	}

	c.SendStatus(status)
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
