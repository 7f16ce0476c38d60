package cron

import (
	"time"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/controllers"
	"github.com/cnagroup/cnacoin/controllers/entities"
	"github.com/cnagroup/cnacoin/models"
)

// LeaderboardCacheJob keeps the per-company leaderboards warm in redis so
// the student dashboards read a precomputed board instead of ranking on
// every request.
type LeaderboardCacheJob struct {
}

func (j *LeaderboardCacheJob) Process() {
	var companies []models.Company

	config.DataBase.Find(&companies)

	for _, company := range companies {
		j.warm(company.ID, "")

		for _, turma := range company.Turmas() {
			j.warm(company.ID, turma.ID)
		}
	}

	time.Sleep(30 * time.Second)
}

func (j *LeaderboardCacheJob) warm(empresaID, turmaID string) {
	board := entities.LeaderboardToEntities(controllers.BuildLeaderboard(empresaID, turmaID))
	key := controllers.LeaderboardCacheKey(empresaID, turmaID)

	if err := config.Redis.SetKey(key, board, 2*time.Minute); err != nil {
		config.Logger.Errorf("Failed to warm leaderboard %s: %v", key, err)
	}
}
