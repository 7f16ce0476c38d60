package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/mq_client"
	"github.com/cnagroup/cnacoin/types"
)

// AlunoNotFoundNome is what transaction views show when the owning aluno was
// deleted. Ledger rows outlive their aluno on purpose.
const AlunoNotFoundNome = "Aluno não encontrado"

type Transaction struct {
	ID          string             `json:"id" gorm:"primaryKey"`
	AlunoID     string             `json:"aluno_id"`
	EmpresaID   string             `json:"empresa_id"`
	Quantidade  int64              `json:"quantidade"`
	Motivo      string             `json:"motivo"`
	Tipo        types.MovementKind `json:"tipo"`
	DataCriacao time.Time          `json:"data_criacao"`
}

func (Transaction) TableName() string {
	return "transacoes_moedas"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if len(t.ID) == 0 {
		t.ID = uuid.New().String()
	}
	if t.DataCriacao.IsZero() {
		t.DataCriacao = time.Now().UTC()
	}

	return nil
}

// Aluno resolves the owning user, or nil when the reference dangles.
func (t *Transaction) Aluno() *User {
	var user *User

	result := config.DataBase.First(&user, "id = ?", t.AlunoID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil
	}
	if result.Error != nil {
		return nil
	}

	return user
}

func (t *Transaction) AlunoNome() string {
	aluno := t.Aluno()

	if aluno == nil {
		return AlunoNotFoundNome
	}

	return aluno.Nome
}

func (t *Transaction) TriggerEvent() {
	if !mq_client.Connected() {
		return
	}

	payload_message, _ := json.Marshal(t)

	if err := mq_client.EnqueueEvent("private", t.AlunoID, "transacao", payload_message); err != nil {
		config.Logger.Errorf("Failed to publish transacao event: %v", err)
	}
}
