package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Winmix713/hekoprot2/internal/domain/match"
	"github.com/Winmix713/hekoprot2/internal/domain/statistics"
	usecasemock "github.com/Winmix713/hekoprot2/internal/mocks/usecase"
	"github.com/Winmix713/hekoprot2/internal/platform/fetch"
)

func settle[P, T any](t *testing.T, q *fetch.Query[P, T]) fetch.State[T] {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, err := q.Wait(ctx)
	if err != nil {
		t.Fatalf("wait query: %v", err)
	}
	return state
}

func TestUseMatches_RefetchesOnFilterChange(t *testing.T) {
	t.Parallel()

	api := usecasemock.NewPredictorAPI(t)
	api.On("ListMatches", mock.Anything, match.Filter{Status: match.StatusLive, Size: 5}).
		Return(match.List{Total: 5}, nil).
		Once()
	api.On("ListMatches", mock.Anything, match.Filter{Status: match.StatusLive, Size: 10}).
		Return(match.List{Total: 10}, nil).
		Once()

	q := UseMatches(context.Background(), api, match.Filter{Status: match.StatusLive, Size: 5})
	defer q.Close()
	if got := settle(t, q).Data.Total; got != 5 {
		t.Fatalf("unexpected first total: %d", got)
	}

	if q.SetParams(match.Filter{Status: match.StatusLive, Size: 5}) {
		t.Fatalf("equal filter must not count as a change")
	}
	if !q.SetParams(match.Filter{Status: match.StatusLive, Size: 10}) {
		t.Fatalf("expected filter change")
	}

	state := settle(t, q)
	if state.Data == nil || state.Data.Total != 10 {
		t.Fatalf("unexpected final data: %+v", state.Data)
	}
}

func TestUseMatchStats_FailureStoresMessage(t *testing.T) {
	t.Parallel()

	api := usecasemock.NewPredictorAPI(t)
	api.On("GetMatchStats", mock.Anything, "").
		Return(match.Stats{}, errors.New("request failed with status code 500")).
		Once()

	q := UseMatchStats(context.Background(), api, "")
	defer q.Close()

	state := settle(t, q)
	if state.Data != nil {
		t.Fatalf("expected nil data on failure, got %+v", state.Data)
	}
	if state.Error != "request failed with status code 500" {
		t.Fatalf("unexpected error: %q", state.Error)
	}
}

func TestUseMatch_IdleWithoutID(t *testing.T) {
	t.Parallel()

	api := usecasemock.NewPredictorAPI(t)

	q := UseMatch(context.Background(), api, "")
	defer q.Close()

	if q.State().Loading {
		t.Fatalf("hook without id must not start loading")
	}

	q.Refetch()
	state := settle(t, q)
	if state.Data != nil || state.HasError() {
		t.Fatalf("expected empty settled state, got %+v", state)
	}

	api.On("GetMatch", mock.Anything, "m-1").Return(match.Match{Venue: strPtr("Anfield")}, nil).Once()
	q.SetParams("m-1")
	state = settle(t, q)
	if state.Data == nil || *state.Data.Venue != "Anfield" {
		t.Fatalf("unexpected match: %+v", state.Data)
	}
}

func TestUseTeamAnalysis_EnabledOnceBothTeamsSet(t *testing.T) {
	t.Parallel()

	api := usecasemock.NewPredictorAPI(t)

	q := UseTeamAnalysis(context.Background(), api, TeamPair{HomeTeamID: "home"})
	defer q.Close()
	if q.State().Loading {
		t.Fatalf("incomplete pair must not start loading")
	}

	api.On("GetTeamAnalysis", mock.Anything, "home", "away", "s1").
		Return(statistics.TeamAnalysis{MatchesCount: 7}, nil).
		Once()

	q.SetParams(TeamPair{HomeTeamID: "home", AwayTeamID: "away", SeasonID: "s1"})
	state := settle(t, q)
	if state.Data == nil || state.Data.MatchesCount != 7 {
		t.Fatalf("unexpected analysis: %+v", state.Data)
	}
}

func TestUseMatchPrediction_IgnoresSeason(t *testing.T) {
	t.Parallel()

	api := usecasemock.NewPredictorAPI(t)
	api.On("GetMatchPrediction", mock.Anything, "home", "away").
		Return(statistics.MatchPrediction{PredictedWinner: "home"}, nil).
		Once()

	q := UseMatchPrediction(context.Background(), api, TeamPair{HomeTeamID: "home", AwayTeamID: "away", SeasonID: "ignored"})
	defer q.Close()

	state := settle(t, q)
	if state.Data == nil || state.Data.PredictedWinner != "home" {
		t.Fatalf("unexpected prediction: %+v", state.Data)
	}
}

func TestUseTeamStats_ForwardsFilter(t *testing.T) {
	t.Parallel()

	homeOnly := true
	filter := statistics.TeamStatsFilter{SeasonID: "s1", HomeOnly: &homeOnly, LastNMatches: 5}

	api := usecasemock.NewPredictorAPI(t)
	api.On("GetTeamStats", mock.Anything, "team-1", filter).
		Return(statistics.TeamStats{Wins: 3}, nil).
		Once()

	q := UseTeamStats(context.Background(), api, TeamStatsParams{TeamID: "team-1", Filter: filter})
	defer q.Close()
	if state := settle(t, q); state.Data == nil || state.Data.Wins != 3 {
		t.Fatalf("unexpected stats: %+v", state.Data)
	}

	sameValue := true
	if q.SetParams(TeamStatsParams{TeamID: "team-1", Filter: statistics.TeamStatsFilter{SeasonID: "s1", HomeOnly: &sameValue, LastNMatches: 5}}) {
		t.Fatalf("structurally equal params must not refetch")
	}
}

func TestUseSystemStatusAndHealth(t *testing.T) {
	t.Parallel()

	api := usecasemock.NewPredictorAPI(t)
	api.On("GetSystemStatus", mock.Anything).Return(map[string]any{"database": "ok"}, nil).Once()
	api.On("HealthCheck", mock.Anything).Return(map[string]any{"status": "healthy"}, nil).Once()

	status := UseSystemStatus(context.Background(), api)
	defer status.Close()
	health := UseHealthCheck(context.Background(), api)
	defer health.Close()

	if got := settle(t, status).Data["database"]; got != "ok" {
		t.Fatalf("unexpected system status: %v", got)
	}
	if got := settle(t, health).Data["status"]; got != "healthy" {
		t.Fatalf("unexpected health: %v", got)
	}
}

func strPtr(v string) *string {
	return &v
}
