package models

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/types"
)

var (
	ErrAlunoNotFound = errors.New("aluno not found")
	ErrEmailTaken    = errors.New("a user with this email already exists")
)

type User struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Nome         string         `json:"nome" validate:"required"`
	Email        string         `json:"email" validate:"required"`
	Role         types.Role     `json:"role" gorm:"default:student"`
	EmpresaID    string         `json:"empresa_id" validate:"required"`
	TurmaID      sql.NullString `json:"turma_id"`
	SaldoMoedas  int64          `json:"saldo_moedas" gorm:"default:0" validate:"ValidateSaldo"`
	PasswordHash []byte         `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (u User) ValidateSaldo(saldo int64) bool {
	return saldo >= 0
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if len(u.ID) == 0 {
		u.ID = uuid.New().String()
	}

	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == types.RoleAdmin
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = hash

	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password))
}

func (u *User) Turma() *Turma {
	if !u.TurmaID.Valid {
		return nil
	}

	var turma *Turma

	result := config.DataBase.First(&turma, "id = ?", u.TurmaID.String)
	if result.Error != nil {
		return nil
	}

	return turma
}

func (u *User) TurmaNome() string {
	turma := u.Turma()

	if turma == nil {
		return ""
	}

	return turma.Nome
}

// PlusCoins credits the saldo inside the caller's transaction.
func (u *User) PlusCoins(tx *gorm.DB, quantidade int64) error {
	if quantidade <= 0 {
		return errors.New("cannot add coins (aluno id: " + u.ID + ", quantidade: " + strconv.FormatInt(quantidade, 10) + ")")
	}

	u.SaldoMoedas += quantidade

	return tx.Save(u).Error
}

// SubCoins debits the saldo inside the caller's transaction. Debits never
// drive the saldo negative: an over-debit clamps at zero.
func (u *User) SubCoins(tx *gorm.DB, quantidade int64) error {
	if quantidade <= 0 {
		return errors.New("cannot remove coins (aluno id: " + u.ID + ", quantidade: " + strconv.FormatInt(quantidade, 10) + ")")
	}

	u.SaldoMoedas -= quantidade
	if u.SaldoMoedas < 0 {
		u.SaldoMoedas = 0
	}

	return tx.Save(u).Error
}

func GetUser(empresaID, id string) (*User, error) {
	var user *User

	result := config.DataBase.Where("id = ? AND empresa_id = ?", id, empresaID).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrAlunoNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

func GetUserByEmail(email string) (*User, error) {
	var user *User

	result := config.DataBase.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrAlunoNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

// EmailTaken reports whether any account already holds the given email.
// Emails live in one namespace across companies: the identity provider keeps
// a single user pool, and the degraded login path resolves by email alone.
func EmailTaken(email string) (bool, error) {
	var count int64

	email = strings.ToLower(strings.TrimSpace(email))

	result := config.DataBase.Model(&User{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

