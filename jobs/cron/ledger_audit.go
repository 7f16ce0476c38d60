package cron

import (
	"github.com/jasonlvhit/gocron"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/models"
)

// LedgerAuditJob recomputes every aluno's saldo from the ledger fold once a
// day and reports drift. With movements applied atomically the two can only
// diverge through out-of-band writes, so any hit here is worth a look.
type LedgerAuditJob struct {
}

func (j *LedgerAuditJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("03:00:00").Do(auditLedger)
	<-s.Start()
}

func auditLedger() {
	var students []models.User

	config.DataBase.Where("role = ?", "student").Find(&students)

	audited := 0
	drifted := 0

	for i := range students {
		student := students[i]

		expected, err := models.ReplaySaldo(student.ID)
		if err != nil {
			config.Logger.Errorf("Ledger audit failed for aluno %s: %v", student.ID, err)
			continue
		}

		audited++

		if expected != student.SaldoMoedas {
			drifted++
			config.Logger.Warnf(
				"Saldo drift for aluno %s: saldo=%d ledger=%d",
				student.ID, student.SaldoMoedas, expected,
			)
		}
	}

	config.Logger.Infof("Ledger audit finished: %d alunos audited, %d drifted.", audited, drifted)
}
