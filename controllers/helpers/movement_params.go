package helpers

import (
	"github.com/gookit/validate"

	"github.com/cnagroup/cnacoin/types"
)

type CreateMovementParams struct {
	AlunoID    string             `json:"aluno_id" form:"aluno_id" validate:"required"`
	Quantidade int64              `json:"quantidade" form:"quantidade" validate:"required|ValidateQuantidade"`
	Motivo     string             `json:"motivo" form:"motivo" validate:"required"`
	Tipo       types.MovementKind `json:"tipo" form:"tipo" validate:"required|ValidateTipo"`
}

func (p CreateMovementParams) ValidateQuantidade(val int64) bool {
	return val > 0
}

func (p CreateMovementParams) ValidateTipo(val types.MovementKind) bool {
	return ValidateKind(val)
}

func (p CreateMovementParams) Messages() map[string]string {
	return validate.MS{
		"required":           "admin.movement.missing_{field}",
		"ValidateQuantidade": "admin.movement.non_positive_quantidade",
		"ValidateTipo":       "admin.movement.invalid_tipo",
	}
}

func (p CreateMovementParams) Translates() map[string]string {
	return ValidateTranslateFields()
}
