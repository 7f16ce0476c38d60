package admin_controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/controllers/auth"
	"github.com/cnagroup/cnacoin/controllers/entities"
	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/controllers/queries"
	"github.com/cnagroup/cnacoin/models"
	"github.com/cnagroup/cnacoin/ranking"
)

// GetTransactions lists the company ledger, most recent first. Rows whose
// aluno was deleted still appear, with the display name placeholder.
func GetTransactions(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.TransactionFilters)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	var member_ids []string
	if len(params.TurmaID) > 0 {
		turma, err := models.GetTurma(CurrentUser.EmpresaID, params.TurmaID)
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

		member_ids = make([]string, 0)
		for _, member := range turma.Members() {
			member_ids = append(member_ids, member.ID)
		}
	}

	if params.Limit == 0 {
		params.Limit = 100
	}

	if params.Page == 0 {
		params.Page = 1
	}

	// Filters apply before pagination, so every page is full until the
	// matches run out.
	var trans []models.Transaction
	config.DataBase.Order("data_criacao desc").Where("empresa_id = ?", CurrentUser.EmpresaID).Find(&trans)

	trans = ranking.FilterTransactions(trans, params.Tipo, member_ids, params.AlunoID)
	trans = ranking.Paginate(trans, params.Page, params.Limit)

	trans_json := make([]entities.TransactionEntity, 0, len(trans))
	for i := range trans {
		trans_json = append(trans_json, entities.TransactionToEntity(&trans[i]))
	}

	c.Response().Header.Add("page", strconv.FormatInt(int64(params.Page), 10))
	c.Response().Header.Add("per-page", strconv.FormatInt(int64(len(trans_json)), 10))

	return c.Status(200).JSON(trans_json)
}
