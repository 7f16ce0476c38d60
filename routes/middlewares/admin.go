package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/models"
)

func AdminValidator(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	if !CurrentUser.IsAdmin() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"authz.invalid_permission"},
		})
	}

	return c.Next()
}
