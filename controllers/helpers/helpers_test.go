package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cnagroup/cnacoin/types"
)

func TestValidateCreateMovementParams(t *testing.T) {
	errs := new(Errors)
	Validate(CreateMovementParams{
		AlunoID:    "uid-1",
		Quantidade: 50,
		Motivo:     "Venceu o quiz",
		Tipo:       types.KindEntrada,
	}, errs)
	assert.Zero(t, errs.Size())

	errs = new(Errors)
	Validate(CreateMovementParams{
		AlunoID:    "uid-1",
		Quantidade: -10,
		Motivo:     "Penalidade",
		Tipo:       types.KindSaida,
	}, errs)
	assert.Contains(t, errs.Errors, "admin.movement.non_positive_quantidade")

	errs = new(Errors)
	Validate(CreateMovementParams{
		AlunoID:    "uid-1",
		Quantidade: 10,
		Motivo:     "Penalidade",
		Tipo:       "bonus",
	}, errs)
	assert.Contains(t, errs.Errors, "admin.movement.invalid_tipo")
}

func TestValidateRosterOrder(t *testing.T) {
	assert.True(t, ValidateRosterOrder(""))
	assert.True(t, ValidateRosterOrder(types.RosterOrderNameAsc))
	assert.True(t, ValidateRosterOrder(types.RosterOrderSaldoDesc))
	assert.False(t, ValidateRosterOrder("random"))
}

func TestValidateKind(t *testing.T) {
	assert.True(t, ValidateKind(types.KindEntrada))
	assert.True(t, ValidateKind(types.KindSaida))
	assert.False(t, ValidateKind(""))
	assert.False(t, ValidateKind("bonus"))
}
