package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/models"
)

func GetCurrentUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals("CurrentUser").(*models.User)
	if !ok {
		return nil
	}

	return user
}
