package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/types"
)

var (
	ErrInvalidQuantidade = errors.New("quantidade must be a positive integer")
	ErrMotivoRequired    = errors.New("motivo must not be empty")
	ErrInvalidTipo       = errors.New("tipo must be entrada or saida")
)

// ApplyMovement credits or debits one aluno and records the movement in the
// ledger. Both writes run in a single database transaction with the aluno row
// locked, so the ledger and the cached saldo cannot diverge and concurrent
// movements against the same aluno serialize instead of losing updates.
//
// The ledger row always keeps the requested quantidade: a saida of 500
// against a saldo of 100 leaves saldo 0 but records 500. The clamp is a
// saldo policy, the ledger is the audit trail of what was asked.
func ApplyMovement(empresaID, alunoID string, quantidade int64, motivo string, tipo types.MovementKind) (*Transaction, error) {
	if quantidade <= 0 {
		return nil, ErrInvalidQuantidade
	}
	if len(strings.TrimSpace(motivo)) == 0 {
		return nil, ErrMotivoRequired
	}
	if tipo != types.KindEntrada && tipo != types.KindSaida {
		return nil, ErrInvalidTipo
	}

	var trans *Transaction

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var aluno *User

		result := lockForUpdate(tx).Where("id = ? AND empresa_id = ?", alunoID, empresaID).First(&aluno)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrAlunoNotFound
		}
		if result.Error != nil {
			return result.Error
		}

		trans = &Transaction{
			AlunoID:    aluno.ID,
			EmpresaID:  aluno.EmpresaID,
			Quantidade: quantidade,
			Motivo:     strings.TrimSpace(motivo),
			Tipo:       tipo,
		}

		if err := tx.Create(trans).Error; err != nil {
			return err
		}

		if tipo == types.KindEntrada {
			return aluno.PlusCoins(tx, quantidade)
		}

		return aluno.SubCoins(tx, quantidade)
	})

	if err != nil {
		return nil, err
	}

	trans.TriggerEvent()
	InvalidateLeaderboard(empresaID)

	return trans, nil
}

// ReplaySaldo folds an aluno's ledger in order, applying the same
// clamp-at-zero policy the live saldo uses. Used by the audit job to verify
// that the cached saldo equals the ledger fold.
func ReplaySaldo(alunoID string) (int64, error) {
	var trans []Transaction

	result := config.DataBase.Where("aluno_id = ?", alunoID).Order("data_criacao asc, id asc").Find(&trans)
	if result.Error != nil {
		return 0, result.Error
	}

	var saldo int64
	for _, t := range trans {
		if t.Tipo == types.KindEntrada {
			saldo += t.Quantidade
		} else {
			saldo -= t.Quantidade
			if saldo < 0 {
				saldo = 0
			}
		}
	}

	return saldo, nil
}

// InvalidateLeaderboard drops the cached leaderboards of a company after a
// movement. Best-effort: a stale cache entry expires on its own TTL.
func InvalidateLeaderboard(empresaID string) {
	if config.Redis == nil {
		return
	}

	keys, err := config.Redis.Connection.Keys(config.Redis.Ctx, "cnacoin:leaderboard:"+empresaID+"*").Result()
	if err != nil {
		config.Logger.Errorf("Failed to list leaderboard keys for %s: %v", empresaID, err)
		return
	}

	for _, key := range keys {
		if err := config.Redis.DeleteKey(key); err != nil {
			config.Logger.Errorf("Failed to invalidate %s: %v", key, err)
		}
	}
}

// lockForUpdate takes a row lock on engines that support it. The sqlite used
// in tests has no row locks; its single-writer model serializes instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}

	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
