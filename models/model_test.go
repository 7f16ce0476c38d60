package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/cnagroup/cnacoin/config"
)

// setupTestDB swaps the global connection for an in-memory sqlite one.
// Limited to a single connection so every session sees the same database
// and transactions serialize the way row locks do in production.
func setupTestDB(t *testing.T) {
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

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	config.DataBase = db
}

func createTestCompany(t *testing.T, nome string) *Company {
	t.Helper()

	company := &Company{Nome: nome}
	if err := config.DataBase.Create(company).Error; err != nil {
		t.Fatalf("failed to create empresa: %v", err)
	}

	return company
}

func createTestAluno(t *testing.T, empresaID, nome string, saldo int64) *User {
	t.Helper()

	aluno := &User{
		Nome:        nome,
		Email:       nome + "@cna.test",
		EmpresaID:   empresaID,
		SaldoMoedas: saldo,
	}
	if err := config.DataBase.Create(aluno).Error; err != nil {
		t.Fatalf("failed to create aluno: %v", err)
	}

	return aluno
}
