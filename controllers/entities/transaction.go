package entities

import (
	"time"

	"github.com/cnagroup/cnacoin/models"
)

type TransactionEntity struct {
	ID          string    `json:"id"`
	AlunoID     string    `json:"aluno_id"`
	AlunoNome   string    `json:"aluno_nome"`
	Quantidade  int64     `json:"quantidade"`
	Motivo      string    `json:"motivo"`
	Tipo        string    `json:"tipo"`
	DataCriacao time.Time `json:"data_criacao"`
}

// TransactionToEntity resolves the owning aluno's display name, falling back
// to the placeholder when the aluno was deleted.
func TransactionToEntity(trans *models.Transaction) TransactionEntity {
	return TransactionEntity{
		ID:          trans.ID,
		AlunoID:     trans.AlunoID,
		AlunoNome:   trans.AlunoNome(),
		Quantidade:  trans.Quantidade,
		Motivo:      trans.Motivo,
		Tipo:        trans.Tipo,
		DataCriacao: trans.DataCriacao,
	}
}

type SessionEntity struct {
	Token string        `json:"token"`
	User  StudentEntity `json:"user"`
}
