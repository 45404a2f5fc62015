package usecase

import (
	"context"
	"strings"

	"github.com/Winmix713/hekoprot2/internal/domain"
	"github.com/Winmix713/hekoprot2/internal/domain/admin"
	"github.com/Winmix713/hekoprot2/internal/domain/match"
	"github.com/Winmix713/hekoprot2/internal/domain/mlmodel"
	"github.com/Winmix713/hekoprot2/internal/domain/prediction"
	"github.com/Winmix713/hekoprot2/internal/domain/statistics"
	"github.com/Winmix713/hekoprot2/internal/platform/fetch"
)

// TeamStatsParams keys the team stats hook.
type TeamStatsParams struct {
	TeamID string
	Filter statistics.TeamStatsFilter
}

// TeamPair keys the head-to-head hooks. SeasonID is only forwarded by the
// analysis hook.
type TeamPair struct {
	HomeTeamID string
	AwayTeamID string
	SeasonID   string
}

func (p TeamPair) complete() bool {
	return hasID(p.HomeTeamID) && hasID(p.AwayTeamID)
}

func UseMatches(ctx context.Context, api PredictorAPI, filter match.Filter) *fetch.Query[match.Filter, *match.List] {
	return fetch.New(ctx, func(ctx context.Context, f match.Filter) (*match.List, error) {
		return pointerTo(api.ListMatches(ctx, f))
	}, filter, fetch.Options[match.Filter]{Name: "matches"})
}

// UseMatch stays idle until a match id is set.
func UseMatch(ctx context.Context, api PredictorAPI, matchID string) *fetch.Query[string, *match.Match] {
	return fetch.New(ctx, func(ctx context.Context, id string) (*match.Match, error) {
		if !hasID(id) {
			return nil, nil
		}
		return pointerTo(api.GetMatch(ctx, id))
	}, matchID, fetch.Options[string]{Name: "match", Enabled: hasID})
}

func UseMatchStats(ctx context.Context, api PredictorAPI, seasonID string) *fetch.Query[string, *match.Stats] {
	return fetch.New(ctx, func(ctx context.Context, season string) (*match.Stats, error) {
		return pointerTo(api.GetMatchStats(ctx, season))
	}, seasonID, fetch.Options[string]{Name: "match_stats"})
}

func UseLeagueTable(ctx context.Context, api PredictorAPI, seasonID string) *fetch.Query[string, []statistics.LeagueTableRow] {
	return fetch.New(ctx, func(ctx context.Context, season string) ([]statistics.LeagueTableRow, error) {
		return api.GetLeagueTable(ctx, season)
	}, seasonID, fetch.Options[string]{Name: "league_table"})
}

func UseTeamStats(ctx context.Context, api PredictorAPI, params TeamStatsParams) *fetch.Query[TeamStatsParams, *statistics.TeamStats] {
	return fetch.New(ctx, func(ctx context.Context, p TeamStatsParams) (*statistics.TeamStats, error) {
		if !hasID(p.TeamID) {
			return nil, nil
		}
		return pointerTo(api.GetTeamStats(ctx, p.TeamID, p.Filter))
	}, params, fetch.Options[TeamStatsParams]{
		Name:    "team_stats",
		Enabled: func(p TeamStatsParams) bool { return hasID(p.TeamID) },
	})
}

func UsePredictions(ctx context.Context, api PredictorAPI, filter prediction.Filter) *fetch.Query[prediction.Filter, *prediction.List] {
	return fetch.New(ctx, func(ctx context.Context, f prediction.Filter) (*prediction.List, error) {
		return pointerTo(api.ListPredictions(ctx, f))
	}, filter, fetch.Options[prediction.Filter]{Name: "predictions"})
}

func UseModels(ctx context.Context, api PredictorAPI, filter mlmodel.Filter) *fetch.Query[mlmodel.Filter, *mlmodel.List] {
	return fetch.New(ctx, func(ctx context.Context, f mlmodel.Filter) (*mlmodel.List, error) {
		return pointerTo(api.ListModels(ctx, f))
	}, filter, fetch.Options[mlmodel.Filter]{Name: "models"})
}

func UseSystemStatus(ctx context.Context, api PredictorAPI) *fetch.Query[struct{}, admin.SystemStatus] {
	return fetch.NewFunc(ctx, api.GetSystemStatus, fetch.Options[struct{}]{Name: "system_status"})
}

func UseHealthCheck(ctx context.Context, api PredictorAPI) *fetch.Query[struct{}, domain.Document] {
	return fetch.NewFunc(ctx, api.HealthCheck, fetch.Options[struct{}]{Name: "health"})
}

// UseTeamAnalysis stays idle until both team ids are set.
func UseTeamAnalysis(ctx context.Context, api PredictorAPI, pair TeamPair) *fetch.Query[TeamPair, *statistics.TeamAnalysis] {
	return fetch.New(ctx, func(ctx context.Context, p TeamPair) (*statistics.TeamAnalysis, error) {
		if !p.complete() {
			return nil, nil
		}
		return pointerTo(api.GetTeamAnalysis(ctx, p.HomeTeamID, p.AwayTeamID, p.SeasonID))
	}, pair, fetch.Options[TeamPair]{Name: "team_analysis", Enabled: TeamPair.complete})
}

func UseMatchPrediction(ctx context.Context, api PredictorAPI, pair TeamPair) *fetch.Query[TeamPair, *statistics.MatchPrediction] {
	return fetch.New(ctx, func(ctx context.Context, p TeamPair) (*statistics.MatchPrediction, error) {
		if !p.complete() {
			return nil, nil
		}
		return pointerTo(api.GetMatchPrediction(ctx, p.HomeTeamID, p.AwayTeamID))
	}, pair, fetch.Options[TeamPair]{Name: "match_prediction", Enabled: TeamPair.complete})
}

func UseMatchStatistics(ctx context.Context, api PredictorAPI, filter statistics.MatchStatsFilter) *fetch.Query[statistics.MatchStatsFilter, *statistics.MatchStatistics] {
	return fetch.New(ctx, func(ctx context.Context, f statistics.MatchStatsFilter) (*statistics.MatchStatistics, error) {
		return pointerTo(api.GetMatchStatistics(ctx, f))
	}, filter, fetch.Options[statistics.MatchStatsFilter]{Name: "match_statistics"})
}

func hasID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func pointerTo[T any](value T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return &value, nil
}
