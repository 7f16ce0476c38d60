package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/models"
	"github.com/cnagroup/cnacoin/services/identity_service"
	"github.com/cnagroup/cnacoin/types"
)

func setupWorkflowDB(t *testing.T) *models.User {
	t.Helper()

	config.NewLoggerService()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to reach sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	config.DataBase = db

	empresa := &models.Company{Nome: "CNA Centro"}
	if err := db.Create(empresa).Error; err != nil {
		t.Fatalf("failed to create empresa: %v", err)
	}

	admin := &models.User{
		Nome:      "Gestor",
		Email:     "gestor@cna.test",
		Role:      types.RoleAdmin,
		EmpresaID: empresa.ID,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	return admin
}

// localProvider has no base URL, so the workflows skip identity calls.
func localProvider() *identity_service.Client {
	return &identity_service.Client{HTTP: http.DefaultClient}
}

func TestCreateStudentLocalOnly(t *testing.T) {
	admin := setupWorkflowDB(t)

	errs := new(Errors)
	payload := CreateStudentParams{
		Nome:  "Ana Souza",
		Email: "Ana@CNA.test",
		Senha: "secret123",
	}

	student := payload.CreateStudent(admin, localProvider(), errs)
	assert.Zero(t, errs.Size())
	assert.NotNil(t, student)

	assert.Equal(t, "Ana Souza", student.Nome)
	assert.Equal(t, "ana@cna.test", student.Email)
	assert.Equal(t, types.RoleStudent, student.Role)
	assert.Equal(t, admin.EmpresaID, student.EmpresaID)
	assert.Equal(t, int64(0), student.SaldoMoedas)
	assert.False(t, student.TurmaID.Valid)
	assert.NoError(t, student.CheckPassword("secret123"))
}

func TestCreateStudentEmailTaken(t *testing.T) {
	admin := setupWorkflowDB(t)

	payload := CreateStudentParams{Nome: "Ana", Email: "ana@cna.test", Senha: "secret123"}

	errs := new(Errors)
	assert.NotNil(t, payload.CreateStudent(admin, localProvider(), errs))

	errs = new(Errors)
	assert.Nil(t, payload.CreateStudent(admin, localProvider(), errs))
	assert.Contains(t, errs.Errors, "admin.student.email_taken")
}

// Emails are one namespace across companies: a duplicate under a second
// empresa must be rejected, otherwise the degraded login path (which resolves
// by email alone) would always pick the first company's row and lock the
// second account out.
func TestCreateStudentEmailTakenAcrossCompanies(t *testing.T) {
	admin := setupWorkflowDB(t)

	errs := new(Errors)
	first := CreateStudentParams{Nome: "Ana A", Email: "ana@cna.test", Senha: "passwordA"}.
		CreateStudent(admin, localProvider(), errs)
	assert.Zero(t, errs.Size())
	assert.NotNil(t, first)

	other := &models.Company{Nome: "CNA Norte"}
	assert.NoError(t, config.DataBase.Create(other).Error)

	otherAdmin := &models.User{
		Nome:      "Gestor Norte",
		Email:     "gestor.norte@cna.test",
		Role:      types.RoleAdmin,
		EmpresaID: other.ID,
	}
	assert.NoError(t, config.DataBase.Create(otherAdmin).Error)

	errs = new(Errors)
	second := CreateStudentParams{Nome: "Ana B", Email: "ana@cna.test", Senha: "passwordB"}.
		CreateStudent(otherAdmin, localProvider(), errs)
	assert.Nil(t, second)
	assert.Contains(t, errs.Errors, "admin.student.email_taken")

	// The login lookup stays unambiguous.
	resolved, err := models.GetUserByEmail("ana@cna.test")
	assert.NoError(t, err)
	assert.Equal(t, "Ana A", resolved.Nome)
	assert.NoError(t, resolved.CheckPassword("passwordA"))
}

func TestCreateStudentInvalidTurma(t *testing.T) {
	admin := setupWorkflowDB(t)

	errs := new(Errors)
	payload := CreateStudentParams{
		Nome:    "Ana",
		Email:   "ana@cna.test",
		Senha:   "secret123",
		TurmaID: "missing-turma",
	}

	assert.Nil(t, payload.CreateStudent(admin, localProvider(), errs))
	assert.Contains(t, errs.Errors, "admin.student.invalid_turma")
}

func TestCreateStudentWithTurma(t *testing.T) {
	admin := setupWorkflowDB(t)

	turma := &models.Turma{Nome: "Teens 3", EmpresaID: admin.EmpresaID}
	assert.NoError(t, config.DataBase.Create(turma).Error)

	errs := new(Errors)
	payload := CreateStudentParams{
		Nome:    "Ana",
		Email:   "ana@cna.test",
		Senha:   "secret123",
		TurmaID: turma.ID,
	}

	student := payload.CreateStudent(admin, localProvider(), errs)
	assert.Zero(t, errs.Size())
	assert.True(t, student.TurmaID.Valid)
	assert.Equal(t, turma.ID, student.TurmaID.String)
}

func TestCreateStudentUsesIdentityID(t *testing.T) {
	admin := setupWorkflowDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)

		w.WriteHeader(201)
		json.NewEncoder(w).Encode(map[string]string{"id": "identity-uid-1"})
	}))
	defer server.Close()

	provider := &identity_service.Client{
		BaseURL:    server.URL,
		AnonKey:    "anon-key",
		ServiceKey: "service-key",
		HTTP:       &http.Client{Timeout: time.Second},
	}

	errs := new(Errors)
	payload := CreateStudentParams{Nome: "Ana", Email: "ana@cna.test", Senha: "secret123"}

	student := payload.CreateStudent(admin, provider, errs)
	assert.Zero(t, errs.Size())
	assert.Equal(t, "identity-uid-1", student.ID)
}

func TestUpdateStudentPartial(t *testing.T) {
	admin := setupWorkflowDB(t)

	errs := new(Errors)
	created := CreateStudentParams{Nome: "Ana", Email: "ana@cna.test", Senha: "secret123"}.
		CreateStudent(admin, localProvider(), errs)
	assert.Zero(t, errs.Size())

	errs = new(Errors)
	updated := UpdateStudentParams{Nome: "Ana Paula"}.
		UpdateStudent(admin, created.ID, localProvider(), errs)
	assert.Zero(t, errs.Size())

	assert.Equal(t, "Ana Paula", updated.Nome)
	assert.NoError(t, updated.CheckPassword("secret123"))

	errs = new(Errors)
	updated = UpdateStudentParams{Senha: "newsecret"}.
		UpdateStudent(admin, created.ID, localProvider(), errs)
	assert.Zero(t, errs.Size())
	assert.NoError(t, updated.CheckPassword("newsecret"))
	assert.Equal(t, "Ana Paula", updated.Nome)
}

func TestUpdateStudentDetachTurma(t *testing.T) {
	admin := setupWorkflowDB(t)

	turma := &models.Turma{Nome: "Teens 3", EmpresaID: admin.EmpresaID}
	assert.NoError(t, config.DataBase.Create(turma).Error)

	errs := new(Errors)
	created := CreateStudentParams{Nome: "Ana", Email: "ana@cna.test", Senha: "secret123", TurmaID: turma.ID}.
		CreateStudent(admin, localProvider(), errs)
	assert.Zero(t, errs.Size())
	assert.True(t, created.TurmaID.Valid)

	errs = new(Errors)
	updated := UpdateStudentParams{TurmaID: types.TurmaFilterNone}.
		UpdateStudent(admin, created.ID, localProvider(), errs)
	assert.Zero(t, errs.Size())
	assert.False(t, updated.TurmaID.Valid)
}

func TestUpdateStudentNotFound(t *testing.T) {
	admin := setupWorkflowDB(t)

	errs := new(Errors)
	assert.Nil(t, UpdateStudentParams{Nome: "Ana"}.UpdateStudent(admin, "missing-id", localProvider(), errs))
	assert.Contains(t, errs.Errors, "record.not_found")
}
