package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/controllers/auth"
	"github.com/cnagroup/cnacoin/controllers/entities"
	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/controllers/queries"
	"github.com/cnagroup/cnacoin/models"
	"github.com/cnagroup/cnacoin/ranking"
)

// TransactionsWindow caps the student history/stats window. The stats are
// windowed figures over these rows, not full-history aggregates.
const TransactionsWindow = 20

const leaderboardTTL = time.Minute

func GetMe(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	return c.Status(200).JSON(entities.StudentToEntity(CurrentUser))
}

func GetAccountTransactions(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.TransactionsWindowQuery)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if params.Limit == 0 || params.Limit > TransactionsWindow {
		params.Limit = TransactionsWindow
	}

	trans := accountWindow(CurrentUser, params.Limit)

	trans_json := make([]entities.TransactionEntity, 0, len(trans))
	for i := range trans {
		trans_json = append(trans_json, entities.TransactionToEntity(&trans[i]))
	}

	return c.Status(200).JSON(trans_json)
}

func GetAccountStats(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	return c.Status(200).JSON(ranking.Stats(accountWindow(CurrentUser, TransactionsWindow)))
}

func GetLeaderboard(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	params := new(queries.LeaderboardQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	cache_key := LeaderboardCacheKey(CurrentUser.EmpresaID, params.TurmaID)

	if config.Redis != nil {
		cached := make([]entities.LeaderboardEntry, 0)
		if err := config.Redis.GetKey(cache_key, &cached); err == nil {
			return c.Status(200).JSON(cached)
		}
	}

	board := entities.LeaderboardToEntities(BuildLeaderboard(CurrentUser.EmpresaID, params.TurmaID))

	if config.Redis != nil {
		if err := config.Redis.SetKey(cache_key, board, leaderboardTTL); err != nil {
			config.Logger.Errorf("Failed to cache leaderboard %s: %v", cache_key, err)
		}
	}

	return c.Status(200).JSON(board)
}

func UpdateProfile(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	payload := new(helpers.UpdateProfileParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	update := helpers.UpdateStudentParams{Nome: payload.Nome, Senha: payload.Senha}
	student := update.UpdateStudent(CurrentUser, CurrentUser.ID, IdentityProvider(), errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	return c.Status(200).JSON(entities.StudentToEntity(student))
}

func accountWindow(user *models.User, limit int) []models.Transaction {
	var trans []models.Transaction

	config.DataBase.Where("aluno_id = ?", user.ID).Order("data_criacao desc").Limit(limit).Find(&trans)

	return trans
}

// BuildLeaderboard computes the top students of one company, optionally
// restricted to a turma. Shared with the daemon's cache warmer.
func BuildLeaderboard(empresaID, turmaID string) []models.User {
	var students []models.User

	config.DataBase.Where("empresa_id = ? AND role = ?", empresaID, "student").Find(&students)

	return ranking.Leaderboard(students, turmaID, ranking.LeaderboardSize)
}

func LeaderboardCacheKey(empresaID, turmaID string) string {
	key := "cnacoin:leaderboard:" + empresaID
	if len(turmaID) > 0 {
		key += ":" + turmaID
	}

	return key
}
