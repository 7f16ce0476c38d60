package admin_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/controllers/auth"
	"github.com/cnagroup/cnacoin/controllers/entities"
	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/models"
)

// CreateMovement applies one coin movement to an aluno of the acting
// admin's company and returns the recorded ledger entry.
func CreateMovement(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	payload := new(helpers.CreateMovementParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	trans, err := models.ApplyMovement(CurrentUser.EmpresaID, payload.AlunoID, payload.Quantidade, payload.Motivo, payload.Tipo)
	if errors.Is(err, models.ErrAlunoNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}
	if errors.Is(err, models.ErrInvalidQuantidade) || errors.Is(err, models.ErrMotivoRequired) || errors.Is(err, models.ErrInvalidTipo) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.movement.invalid_payload"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"admin.movement.failed"},
		})
	}

	return c.Status(201).JSON(entities.TransactionToEntity(trans))
}
