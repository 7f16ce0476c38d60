package admin_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/controllers/auth"
	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/models"
)

func GetTurmas(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	var turmas []models.Turma
	config.DataBase.Where("empresa_id = ?", CurrentUser.EmpresaID).Order("nome asc").Find(&turmas)

	return c.Status(200).JSON(turmas)
}

func CreateTurma(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	payload := new(helpers.TurmaParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	turma := &models.Turma{
		Nome:      payload.Nome,
		EmpresaID: CurrentUser.EmpresaID,
	}

	if err := config.DataBase.Create(turma).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"admin.turma.create_failed"},
		})
	}

	return c.Status(201).JSON(turma)
}

func UpdateTurma(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	payload := new(helpers.TurmaParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	turma, err := models.GetTurma(CurrentUser.EmpresaID, c.Params("id"))
	if errors.Is(err, models.ErrTurmaNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	turma.Nome = payload.Nome

	if err := config.DataBase.Save(turma).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"admin.turma.update_failed"},
		})
	}

	return c.Status(200).JSON(turma)
}

func DeleteTurma(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	err := models.DeleteTurma(CurrentUser.EmpresaID, c.Params("id"))
	if errors.Is(err, models.ErrTurmaNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"admin.turma.delete_failed"},
		})
	}

	return c.Status(200).JSON(fiber.Map{"success": true})
}
