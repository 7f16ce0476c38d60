package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/controllers/helpers"
)

func GetTimestamp(c *fiber.Ctx) error {
	c.Status(200).JSON(time.Now())

	return nil
}

func GetHealth(c *fiber.Ctx) error {
	db, err := config.DataBase.DB()
	if err != nil || db.Ping() != nil {
		return c.Status(503).JSON(helpers.Errors{
			Errors: []string{"public.health.database_unavailable"},
		})
	}

	return c.Status(200).JSON(fiber.Map{"status": "ok"})
}
