package entities

import (
	"time"

	"github.com/cnagroup/cnacoin/models"
)

type StudentEntity struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	EmpresaID   string    `json:"empresa_id"`
	TurmaID     *string   `json:"turma_id"`
	TurmaNome   string    `json:"turma_nome,omitempty"`
	SaldoMoedas int64     `json:"saldo_moedas"`
	CreatedAt   time.Time `json:"created_at"`
}

func StudentToEntity(user *models.User) StudentEntity {
	entity := StudentEntity{
		ID:          user.ID,
		Nome:        user.Nome,
		Email:       user.Email,
		Role:        user.Role,
		EmpresaID:   user.EmpresaID,
		SaldoMoedas: user.SaldoMoedas,
		CreatedAt:   user.CreatedAt,
	}

	if user.TurmaID.Valid {
		turma_id := user.TurmaID.String
		entity.TurmaID = &turma_id
		entity.TurmaNome = user.TurmaNome()
	}

	return entity
}

type LeaderboardEntry struct {
	Position    int    `json:"position"`
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	TurmaNome   string `json:"turma_nome,omitempty"`
	SaldoMoedas int64  `json:"saldo_moedas"`
}

func LeaderboardToEntities(ranked []models.User) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(ranked))

	for i, student := range ranked {
		entries = append(entries, LeaderboardEntry{
			Position:    i + 1,
			ID:          student.ID,
			Nome:        student.Nome,
			TurmaNome:   student.TurmaNome(),
			SaldoMoedas: student.SaldoMoedas,
		})
	}

	return entries
}
