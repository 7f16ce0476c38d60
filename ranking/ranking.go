// Package ranking holds the pure in-memory transforms behind the roster and
// leaderboard views: filtering, ordering and aggregation over lists already
// scoped to one company. No I/O happens here.
package ranking

import (
	"sort"
	"strings"

	"github.com/cnagroup/cnacoin/models"
	"github.com/cnagroup/cnacoin/types"
)

const LeaderboardSize = 10

// FilterStudents keeps students whose nome or email contains search
// (case-insensitive) and who match the turma filter ("todas", "none" for
// students without turma, or a turma id).
func FilterStudents(students []models.User, search, turmaID string) []models.User {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.User, 0, len(students))

	for _, student := range students {
		if len(search) > 0 {
			nome := strings.ToLower(student.Nome)
			email := strings.ToLower(student.Email)

			if !strings.Contains(nome, search) && !strings.Contains(email, search) {
				continue
			}
		}

		if !matchTurma(student, turmaID) {
			continue
		}

		filtered = append(filtered, student)
	}

	return filtered
}

func matchTurma(student models.User, turmaID string) bool {
	switch turmaID {
	case "", types.TurmaFilterAll:
		return true
	case types.TurmaFilterNone:
		return !student.TurmaID.Valid
	default:
		return student.TurmaID.Valid && student.TurmaID.String == turmaID
	}
}

// SortStudents returns a sorted copy. The sort is stable: students with
// equal keys keep their input order.
func SortStudents(students []models.User, order types.RosterOrder) []models.User {
	sorted := make([]models.User, len(students))
	copy(sorted, students)

	switch order {
	case types.RosterOrderNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Nome) > strings.ToLower(sorted[j].Nome)
		})
	case types.RosterOrderSaldoDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SaldoMoedas > sorted[j].SaldoMoedas
		})
	case types.RosterOrderSaldoAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SaldoMoedas < sorted[j].SaldoMoedas
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Nome) < strings.ToLower(sorted[j].Nome)
		})
	}

	return sorted
}

// Leaderboard ranks students by saldo descending (stable) within an optional
// turma restriction and keeps the top limit entries. Students without coins
// do not rank; an empty or all-zero turma yields an empty leaderboard.
func Leaderboard(students []models.User, turmaID string, limit int) []models.User {
	ranked := make([]models.User, 0, len(students))

	for _, student := range students {
		if !matchTurma(student, turmaID) {
			continue
		}
		if student.SaldoMoedas <= 0 {
			continue
		}

		ranked = append(ranked, student)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SaldoMoedas > ranked[j].SaldoMoedas
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// Paginate slices one 1-based page out of an already-filtered list. A page
// past the end is empty, never an error.
func Paginate(trans []models.Transaction, page, limit int) []models.Transaction {
	if page < 1 || limit < 1 {
		return []models.Transaction{}
	}

	start := (page - 1) * limit
	if start >= len(trans) {
		return []models.Transaction{}
	}

	end := start + limit
	if end > len(trans) {
		end = len(trans)
	}

	return trans[start:end]
}

// FilterTransactions applies the optional transaction filters: exact tipo,
// restriction to a set of aluno ids (turma members), restriction to one
// aluno. Nil alunoIDs means no member restriction.
func FilterTransactions(trans []models.Transaction, tipo types.MovementKind, alunoIDs []string, alunoID string) []models.Transaction {
	var members map[string]bool
	if alunoIDs != nil {
		members = make(map[string]bool, len(alunoIDs))
		for _, id := range alunoIDs {
			members[id] = true
		}
	}

	filtered := make([]models.Transaction, 0, len(trans))

	for _, t := range trans {
		if len(tipo) > 0 && t.Tipo != tipo {
			continue
		}
		if members != nil && !members[t.AlunoID] {
			continue
		}
		if len(alunoID) > 0 && t.AlunoID != alunoID {
			continue
		}

		filtered = append(filtered, t)
	}

	return filtered
}
