package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cnagroup/cnacoin/config"
)

var ErrTurmaNotFound = errors.New("turma not found")

type Turma struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" validate:"required"`
	EmpresaID string    `json:"empresa_id" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func (Turma) TableName() string {
	return "turmas"
}

func (t *Turma) BeforeCreate(tx *gorm.DB) error {
	if len(t.ID) == 0 {
		t.ID = uuid.New().String()
	}

	return nil
}

func (t *Turma) Members() []User {
	var members []User

	config.DataBase.Where("turma_id = ?", t.ID).Find(&members)

	return members
}

func GetTurma(empresaID, id string) (*Turma, error) {
	var turma *Turma

	result := config.DataBase.Where("id = ? AND empresa_id = ?", id, empresaID).First(&turma)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrTurmaNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return turma, nil
}

// DeleteTurma removes a turma. Members are detached first so the row delete
// can never orphan a turma_id reference; students themselves are kept.
func DeleteTurma(empresaID, id string) error {
	turma, err := GetTurma(empresaID, id)
	if err != nil {
		return err
	}

	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&User{}).Where("turma_id = ?", turma.ID).Update("turma_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&Turma{}, "id = ?", turma.ID).Error
	})
}
