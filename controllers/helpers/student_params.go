package helpers

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gookit/validate"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/models"
	"github.com/cnagroup/cnacoin/services/identity_service"
	"github.com/cnagroup/cnacoin/types"
)

type CreateStudentParams struct {
	Nome    string `json:"nome" form:"nome" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required|email"`
	Senha   string `json:"senha" form:"senha" validate:"required|minLen:6"`
	TurmaID string `json:"turma_id" form:"turma_id"`
}

func (p CreateStudentParams) Messages() map[string]string {
	return validate.MS{
		"required": "admin.student.missing_{field}",
		"email":    "admin.student.invalid_email",
		"minLen":   "admin.student.password_too_short",
	}
}

func (p CreateStudentParams) Translates() map[string]string {
	return ValidateTranslateFields()
}

// CreateStudent provisions the identity then inserts the aluno row with
// saldo zero. A failed row insert rolls the identity back; when even that
// fails the orphan is logged rather than silently leaked.
func (p CreateStudentParams) CreateStudent(admin *models.User, provider *identity_service.Client, err_src *Errors) *models.User {
	email := strings.ToLower(strings.TrimSpace(p.Email))

	taken, err := models.EmailTaken(email)
	if err != nil {
		err_src.Errors = append(err_src.Errors, "server.internal_error")

		return nil
	}
	if taken {
		err_src.Errors = append(err_src.Errors, "admin.student.email_taken")

		return nil
	}

	turma_id, ok := resolveTurmaRef(admin.EmpresaID, p.TurmaID, err_src)
	if !ok {
		return nil
	}

	var identity_id string
	if provider.Enabled() {
		identity_id, err = provider.CreateIdentity(email, p.Senha)
		if errors.Is(err, identity_service.ErrEmailTaken) {
			err_src.Errors = append(err_src.Errors, "admin.student.email_taken")

			return nil
		}
		if err != nil {
			config.Logger.Errorf("Failed to provision identity for %s: %v", email, err)
			err_src.Errors = append(err_src.Errors, "admin.student.identity_failed")

			return nil
		}
	}

	student := &models.User{
		ID:          identity_id,
		Nome:        strings.TrimSpace(p.Nome),
		Email:       email,
		Role:        types.RoleStudent,
		EmpresaID:   admin.EmpresaID,
		TurmaID:     turma_id,
		SaldoMoedas: 0,
	}

	if err := student.SetPassword(p.Senha); err != nil {
		err_src.Errors = append(err_src.Errors, "server.internal_error")

		return nil
	}

	if err := config.DataBase.Create(student).Error; err != nil {
		if provider.Enabled() && len(identity_id) > 0 {
			if del_err := provider.DeleteIdentity(identity_id); del_err != nil {
				config.Logger.Errorf("Orphaned identity %s after failed aluno insert: %v", identity_id, del_err)
			}
		}

		config.Logger.Errorf("Failed to insert aluno %s: %v", email, err)
		err_src.Errors = append(err_src.Errors, "admin.student.create_failed")

		return nil
	}

	return student
}

type UpdateStudentParams struct {
	Nome    string `json:"nome" form:"nome"`
	TurmaID string `json:"turma_id" form:"turma_id"`
	Senha   string `json:"senha" form:"senha" validate:"ValidateSenha"`
}

func (p UpdateStudentParams) ValidateSenha(val string) bool {
	return len(val) == 0 || len(val) >= 6
}

func (p UpdateStudentParams) Messages() map[string]string {
	return validate.MS{
		"ValidateSenha": "admin.student.password_too_short",
	}
}

func (p UpdateStudentParams) Translates() map[string]string {
	return ValidateTranslateFields()
}

// UpdateStudent changes only the supplied fields. An omitted senha stays
// unchanged; a supplied one is forwarded to the identity provider
// (best-effort) and rehashed locally for the degraded login path.
func (p UpdateStudentParams) UpdateStudent(admin *models.User, id string, provider *identity_service.Client, err_src *Errors) *models.User {
	student, err := models.GetUser(admin.EmpresaID, id)
	if errors.Is(err, models.ErrAlunoNotFound) {
		err_src.Errors = append(err_src.Errors, "record.not_found")

		return nil
	}
	if err != nil {
		err_src.Errors = append(err_src.Errors, "server.internal_error")

		return nil
	}

	if nome := strings.TrimSpace(p.Nome); len(nome) > 0 {
		student.Nome = nome
	}

	if len(p.TurmaID) > 0 {
		turma_id, ok := resolveTurmaRef(admin.EmpresaID, p.TurmaID, err_src)
		if !ok {
			return nil
		}
		student.TurmaID = turma_id
	}

	if len(p.Senha) > 0 {
		if provider.Privileged() {
			if err := provider.UpdatePassword(student.ID, p.Senha); err != nil {
				config.Logger.Errorf("Failed to reset identity password for %s: %v", student.ID, err)
			}
		}

		if err := student.SetPassword(p.Senha); err != nil {
			err_src.Errors = append(err_src.Errors, "server.internal_error")

			return nil
		}
	}

	if err := config.DataBase.Save(student).Error; err != nil {
		err_src.Errors = append(err_src.Errors, "admin.student.update_failed")

		return nil
	}

	return student
}

// resolveTurmaRef maps the wire turma reference ("", "none" or an id) to a
// nullable column value, checking that a concrete id exists in the company.
func resolveTurmaRef(empresaID, ref string, err_src *Errors) (sql.NullString, bool) {
	if len(ref) == 0 || ref == types.TurmaFilterNone {
		return sql.NullString{}, true
	}

	turma, err := models.GetTurma(empresaID, ref)
	if errors.Is(err, models.ErrTurmaNotFound) {
		err_src.Errors = append(err_src.Errors, "admin.student.invalid_turma")

		return sql.NullString{}, false
	}
	if err != nil {
		err_src.Errors = append(err_src.Errors, "server.internal_error")

		return sql.NullString{}, false
	}

	return sql.NullString{String: turma.ID, Valid: true}, true
}
