package usecase

import (
	"context"
	"fmt"

	"github.com/Winmix713/hekoprot2/internal/domain/admin"
	"github.com/Winmix713/hekoprot2/internal/domain/match"
	"github.com/Winmix713/hekoprot2/internal/domain/mlmodel"
	"github.com/Winmix713/hekoprot2/internal/domain/prediction"
	"github.com/Winmix713/hekoprot2/internal/domain/statistics"
	"github.com/Winmix713/hekoprot2/internal/platform/fetch"
	"github.com/Winmix713/hekoprot2/internal/platform/logging"
)

const (
	overviewLiveMatchesSize   = 5
	overviewRecentResultsSize = 5
	overviewPredictionsSize   = 10
)

// Overview holds one state per dashboard panel. A failed panel carries its own
// error and never hides the others.
type Overview struct {
	MatchStats    fetch.State[*match.Stats]
	LiveMatches   fetch.State[*match.List]
	RecentResults fetch.State[*match.List]
	ActiveModels  fetch.State[*mlmodel.List]
	Predictions   fetch.State[*prediction.List]
	SystemStatus  fetch.State[admin.SystemStatus]
	LeagueTable   fetch.State[[]statistics.LeagueTableRow]
}

// FailedPanels lists the panels that settled with an error.
func (o Overview) FailedPanels() []string {
	var out []string
	for _, panel := range []struct {
		name string
		err  string
	}{
		{"match_stats", o.MatchStats.Error},
		{"live_matches", o.LiveMatches.Error},
		{"recent_results", o.RecentResults.Error},
		{"active_models", o.ActiveModels.Error},
		{"predictions", o.Predictions.Error},
		{"system_status", o.SystemStatus.Error},
		{"league_table", o.LeagueTable.Error},
	} {
		if panel.err != "" {
			out = append(out, panel.name)
		}
	}
	return out
}

type DashboardService struct {
	api    PredictorAPI
	logger *logging.Logger
}

func NewDashboardService(api PredictorAPI, logger *logging.Logger) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardService{api: api, logger: logger}
}

// Overview loads every panel concurrently and waits until all have settled. When
// ctx ends first, the panels that already settled are returned with the error.
func (s *DashboardService) Overview(ctx context.Context, seasonID string) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Overview")
	defer span.End()

	matchStats := UseMatchStats(ctx, s.api, seasonID)
	defer matchStats.Close()
	liveMatches := UseMatches(ctx, s.api, match.Filter{Status: match.StatusLive, Size: overviewLiveMatchesSize})
	defer liveMatches.Close()
	recentResults := UseMatches(ctx, s.api, match.Filter{Status: match.StatusFinished, Size: overviewRecentResultsSize})
	defer recentResults.Close()
	activeModels := UseModels(ctx, s.api, mlmodel.Filter{Status: mlmodel.StatusActive})
	defer activeModels.Close()
	predictions := UsePredictions(ctx, s.api, prediction.Filter{Size: overviewPredictionsSize})
	defer predictions.Close()
	systemStatus := UseSystemStatus(ctx, s.api)
	defer systemStatus.Close()
	leagueTable := UseLeagueTable(ctx, s.api, seasonID)
	defer leagueTable.Close()

	var (
		out      Overview
		firstErr error
	)
	collect := func(panel string, err error) {
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("wait %s: %w", panel, err)
		}
	}

	var err error
	out.MatchStats, err = matchStats.Wait(ctx)
	collect("match stats", err)
	out.LiveMatches, err = liveMatches.Wait(ctx)
	collect("live matches", err)
	out.RecentResults, err = recentResults.Wait(ctx)
	collect("recent results", err)
	out.ActiveModels, err = activeModels.Wait(ctx)
	collect("active models", err)
	out.Predictions, err = predictions.Wait(ctx)
	collect("predictions", err)
	out.SystemStatus, err = systemStatus.Wait(ctx)
	collect("system status", err)
	out.LeagueTable, err = leagueTable.Wait(ctx)
	collect("league table", err)

	if firstErr == nil && ctx.Err() != nil {
		firstErr = fmt.Errorf("load overview: %w", ctx.Err())
	}
	if firstErr != nil {
		return out, firstErr
	}

	if failed := out.FailedPanels(); len(failed) > 0 {
		s.logger.WarnContext(ctx, "dashboard overview has failed panels", "panels", failed)
	}
	return out, nil
}
