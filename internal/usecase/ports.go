package usecase

import (
	"context"

	"github.com/Winmix713/hekoprot2/internal/domain"
	"github.com/Winmix713/hekoprot2/internal/domain/admin"
	"github.com/Winmix713/hekoprot2/internal/domain/match"
	"github.com/Winmix713/hekoprot2/internal/domain/mlmodel"
	"github.com/Winmix713/hekoprot2/internal/domain/prediction"
	"github.com/Winmix713/hekoprot2/internal/domain/statistics"
)

// PredictorAPI is the subset of the backend client the hooks and services bind to.
type PredictorAPI interface {
	HealthCheck(ctx context.Context) (domain.Document, error)
	ListMatches(ctx context.Context, filter match.Filter) (match.List, error)
	GetMatch(ctx context.Context, matchID string) (match.Match, error)
	GetMatchStats(ctx context.Context, seasonID string) (match.Stats, error)
	GetLeagueTable(ctx context.Context, seasonID string) ([]statistics.LeagueTableRow, error)
	GetTeamStats(ctx context.Context, teamID string, filter statistics.TeamStatsFilter) (statistics.TeamStats, error)
	GetTeamAnalysis(ctx context.Context, homeTeamID, awayTeamID, seasonID string) (statistics.TeamAnalysis, error)
	GetMatchPrediction(ctx context.Context, homeTeamID, awayTeamID string) (statistics.MatchPrediction, error)
	GetMatchStatistics(ctx context.Context, filter statistics.MatchStatsFilter) (statistics.MatchStatistics, error)
	ListPredictions(ctx context.Context, filter prediction.Filter) (prediction.List, error)
	CreatePrediction(ctx context.Context, input prediction.CreateInput) (prediction.Prediction, error)
	ListModels(ctx context.Context, filter mlmodel.Filter) (mlmodel.List, error)
	GetSystemStatus(ctx context.Context) (admin.SystemStatus, error)
}
