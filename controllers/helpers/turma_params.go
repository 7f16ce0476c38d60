package helpers

import (
	"github.com/gookit/validate"
)

type TurmaParams struct {
	Nome string `json:"nome" form:"nome" validate:"required"`
}

func (p TurmaParams) Messages() map[string]string {
	return validate.MS{
		"required": "admin.turma.missing_nome",
	}
}

func (p TurmaParams) Translates() map[string]string {
	return ValidateTranslateFields()
}

type SessionParams struct {
	Email string `json:"email" form:"email" validate:"required|email"`
	Senha string `json:"senha" form:"senha" validate:"required"`
}

func (p SessionParams) Messages() map[string]string {
	return validate.MS{
		"required": "identity.session.missing_{field}",
		"email":    "identity.session.invalid_email",
	}
}

func (p SessionParams) Translates() map[string]string {
	return ValidateTranslateFields()
}

type UpdateProfileParams struct {
	Nome  string `json:"nome" form:"nome"`
	Senha string `json:"senha" form:"senha" validate:"ValidateSenha"`
}

func (p UpdateProfileParams) ValidateSenha(val string) bool {
	return len(val) == 0 || len(val) >= 6
}

func (p UpdateProfileParams) Messages() map[string]string {
	return validate.MS{
		"ValidateSenha": "account.profile.password_too_short",
	}
}

func (p UpdateProfileParams) Translates() map[string]string {
	return ValidateTranslateFields()
}
