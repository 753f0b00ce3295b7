// error_utils.go
package utils

import (
	"mergington-api/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Detail: detail,
	})
}
