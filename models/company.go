package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cnagroup/cnacoin/config"
)

type Company struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func (Company) TableName() string {
	return "empresas"
}

func (e *Company) BeforeCreate(tx *gorm.DB) error {
	if len(e.ID) == 0 {
		e.ID = uuid.New().String()
	}

	return nil
}

func (e *Company) Turmas() []Turma {
	var turmas []Turma

	config.DataBase.Where("empresa_id = ?", e.ID).Order("nome asc").Find(&turmas)

	return turmas
}

func (e *Company) Students() []User {
	var students []User

	config.DataBase.Where("empresa_id = ? AND role = ?", e.ID, "student").Find(&students)

	return students
}
