package queries

import (
	"github.com/gookit/validate"

	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/types"
)

type TransactionFilters struct {
	Tipo    types.MovementKind `query:"tipo" validate:"ValidateTipo"`
	TurmaID string             `query:"turma_id"`
	AlunoID string             `query:"aluno_id"`
	Limit   int                `query:"limit" validate:"uint"`
	Page    int                `query:"page" validate:"uint"`
}

func (t TransactionFilters) ValidateTipo(val types.MovementKind) bool {
	return len(val) == 0 || helpers.ValidateKind(val)
}

func (t TransactionFilters) Messages() map[string]string {
	return validate.MS{
		"ValidateTipo": "admin.transaction.invalid_tipo",
		"uint":         "admin.transaction.invalid_{field}",
	}
}

func (t TransactionFilters) Translates() map[string]string {
	return helpers.ValidateTranslateFields()
}
