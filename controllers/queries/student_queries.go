package queries

import (
	"github.com/gookit/validate"

	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/types"
)

type StudentFilters struct {
	Search  string            `query:"search"`
	TurmaID string            `query:"turma_id"`
	OrderBy types.RosterOrder `query:"order_by" validate:"ValidateRosterOrder"`
}

func (t StudentFilters) ValidateRosterOrder(val types.RosterOrder) bool {
	return helpers.ValidateRosterOrder(val)
}

func (t StudentFilters) Messages() map[string]string {
	return validate.MS{
		"ValidateRosterOrder": "admin.student.invalid_order_by",
	}
}

func (t StudentFilters) Translates() map[string]string {
	return helpers.ValidateTranslateFields()
}

type LeaderboardQuery struct {
	TurmaID string `query:"turma_id"`
}

type TransactionsWindowQuery struct {
	Limit int `query:"limit" validate:"uint"`
}

func (t TransactionsWindowQuery) Messages() map[string]string {
	return validate.MS{
		"uint": "account.transactions.invalid_limit",
	}
}

func (t TransactionsWindowQuery) Translates() map[string]string {
	return helpers.ValidateTranslateFields()
}
