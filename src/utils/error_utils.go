// error_utils.go
package utils

import (
	"Backend-Mergington-API/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError ส่ง error กลับเป็น JSON รูปแบบเดียวกันทั้ง API
func HandleError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Detail: detail,
	})
}
