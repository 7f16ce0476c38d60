package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/types"
)

func TestDeleteTurmaDetachesMembers(t *testing.T) {
	setupTestDB(t)

	empresa := createTestCompany(t, "CNA Centro")

	turma := &Turma{Nome: "Teens 3", EmpresaID: empresa.ID}
	assert.NoError(t, config.DataBase.Create(turma).Error)

	ana := createTestAluno(t, empresa.ID, "ana", 50)
	bruno := createTestAluno(t, empresa.ID, "bruno", 20)
	assert.NoError(t, config.DataBase.Model(ana).Update("turma_id", turma.ID).Error)
	assert.NoError(t, config.DataBase.Model(bruno).Update("turma_id", turma.ID).Error)

	assert.NoError(t, DeleteTurma(empresa.ID, turma.ID))

	_, err := GetTurma(empresa.ID, turma.ID)
	assert.ErrorIs(t, err, ErrTurmaNotFound)

	// Members survive with the reference cleared and the saldo untouched.
	for _, aluno := range []*User{ana, bruno} {
		reloaded, err := GetUser(empresa.ID, aluno.ID)
		assert.NoError(t, err)
		assert.False(t, reloaded.TurmaID.Valid)
		assert.Equal(t, aluno.SaldoMoedas, reloaded.SaldoMoedas)
	}
}

func TestDeleteTurmaScopedToEmpresa(t *testing.T) {
	setupTestDB(t)

	empresa := createTestCompany(t, "CNA Centro")
	other := createTestCompany(t, "CNA Norte")

	turma := &Turma{Nome: "Teens 3", EmpresaID: other.ID}
	assert.NoError(t, config.DataBase.Create(turma).Error)

	assert.ErrorIs(t, DeleteTurma(empresa.ID, turma.ID), ErrTurmaNotFound)
}

func TestTransactionsOutliveAluno(t *testing.T) {
	setupTestDB(t)

	empresa := createTestCompany(t, "CNA Centro")
	aluno := createTestAluno(t, empresa.ID, "carla", 0)

	_, err := ApplyMovement(empresa.ID, aluno.ID, 80, "Apresentou o seminario", types.KindEntrada)
	assert.NoError(t, err)

	assert.NoError(t, config.DataBase.Delete(&User{}, "id = ?", aluno.ID).Error)

	var trans []Transaction
	config.DataBase.Where("empresa_id = ?", empresa.ID).Find(&trans)
	assert.Len(t, trans, 1)

	assert.Nil(t, trans[0].Aluno())
	assert.Equal(t, AlunoNotFoundNome, trans[0].AlunoNome())
}
