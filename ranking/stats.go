package ranking

import (
	"github.com/cnagroup/cnacoin/models"
	"github.com/cnagroup/cnacoin/types"
)

// StatsResult aggregates one window of transactions. When the caller limits
// the window (the student view passes the most recent 20) these are windowed
// figures, not full-history totals.
type StatsResult struct {
	EntradaCount int   `json:"entrada_count"`
	SaidaCount   int   `json:"saida_count"`
	EntradaTotal int64 `json:"entrada_total"`
	SaidaTotal   int64 `json:"saida_total"`
	MovedBalance int64 `json:"moved_balance"`
}

func Stats(trans []models.Transaction) StatsResult {
	var stats StatsResult

	for _, t := range trans {
		if t.Tipo == types.KindEntrada {
			stats.EntradaCount++
			stats.EntradaTotal += t.Quantidade
		} else {
			stats.SaidaCount++
			stats.SaidaTotal += t.Quantidade
		}
	}

	stats.MovedBalance = stats.EntradaTotal - stats.SaidaTotal

	return stats
}
