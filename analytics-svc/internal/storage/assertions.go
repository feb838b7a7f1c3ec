package storage

import "housing-reviews/analytics-svc/internal/service"

var (
	_ service.Leaderboard   = (*RedisBoards)(nil)
	_ service.HousingReader = (*PostgresReader)(nil)
)
