package statistics

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Winmix713/hekoprot2/internal/domain"
)

// TeamAnalysis compares two teams ahead of a fixture.
type TeamAnalysis struct {
	HomeTeam                  string             `json:"home_team"`
	AwayTeam                  string             `json:"away_team"`
	MatchesCount              int                `json:"matches_count"`
	BothTeamsScoredPercentage float64            `json:"both_teams_scored_percentage"`
	AverageGoals              map[string]float64 `json:"average_goals"`
	HomeFormIndex             float64            `json:"home_form_index"`
	AwayFormIndex             float64            `json:"away_form_index"`
	HeadToHeadStats           domain.Document    `json:"head_to_head_stats"`
}

// MatchPrediction is the head-to-head outcome forecast.
type MatchPrediction struct {
	HomeExpectedGoals    float64         `json:"home_expected_goals"`
	AwayExpectedGoals    float64         `json:"away_expected_goals"`
	BothTeamsToScoreProb float64         `json:"both_teams_to_score_prob"`
	PredictedWinner      string          `json:"predicted_winner"`
	Confidence           float64         `json:"confidence"`
	ModelPredictions     domain.Document `json:"model_predictions"`
}

type TeamStats struct {
	TeamID         uuid.UUID          `json:"team_id"`
	TotalMatches   int                `json:"total_matches"`
	Wins           int                `json:"wins"`
	Draws          int                `json:"draws"`
	Losses         int                `json:"losses"`
	GoalsFor       int                `json:"goals_for"`
	GoalsAgainst   int                `json:"goals_against"`
	GoalDifference int                `json:"goal_difference"`
	Points         int                `json:"points"`
	WinPercentage  float64            `json:"win_percentage"`
	HomeRecord     map[string]int     `json:"home_record"`
	AwayRecord     map[string]int     `json:"away_record"`
	Averages       map[string]float64 `json:"averages"`
	FormIndex      float64            `json:"form_index"`
}

// LeagueTableRow is one standings line; Form is the recent-results string, e.g. "WWDLW".
type LeagueTableRow struct {
	Position       int       `json:"position"`
	TeamID         uuid.UUID `json:"team_id"`
	TeamName       string    `json:"team_name"`
	MatchesPlayed  int       `json:"matches_played"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	GoalsFor       int       `json:"goals_for"`
	GoalsAgainst   int       `json:"goals_against"`
	GoalDifference int       `json:"goal_difference"`
	Points         int       `json:"points"`
	Form           string    `json:"form"`
}

type MatchStatistics struct {
	TotalMatches              int     `json:"total_matches"`
	AverageGoalsPerMatch      float64 `json:"average_goals_per_match"`
	BothTeamsScoredPercentage float64 `json:"both_teams_scored_percentage"`
	HomeWinPercentage         float64 `json:"home_win_percentage"`
	AwayWinPercentage         float64 `json:"away_win_percentage"`
	DrawPercentage            float64 `json:"draw_percentage"`
	Over25GoalsPercentage     float64 `json:"over_2_5_goals_percentage"`
	Under25GoalsPercentage    float64 `json:"under_2_5_goals_percentage"`
	CleanSheetsPercentage     float64 `json:"clean_sheets_percentage"`
}

type TeamStatsFilter struct {
	SeasonID     string
	HomeOnly     *bool
	AwayOnly     *bool
	LastNMatches int
}

func (f TeamStatsFilter) Values() url.Values {
	values := url.Values{}
	if seasonID := strings.TrimSpace(f.SeasonID); seasonID != "" {
		values.Set("season_id", seasonID)
	}
	if f.HomeOnly != nil {
		values.Set("home_only", strconv.FormatBool(*f.HomeOnly))
	}
	if f.AwayOnly != nil {
		values.Set("away_only", strconv.FormatBool(*f.AwayOnly))
	}
	if f.LastNMatches > 0 {
		values.Set("last_n_matches", strconv.Itoa(f.LastNMatches))
	}
	return values
}

type MatchStatsFilter struct {
	SeasonID string
	TeamID   string
	DateFrom string
	DateTo   string
}

func (f MatchStatsFilter) Values() url.Values {
	values := url.Values{}
	for key, value := range map[string]string{
		"season_id": f.SeasonID,
		"team_id":   f.TeamID,
		"date_from": f.DateFrom,
		"date_to":   f.DateTo,
	} {
		if value = strings.TrimSpace(value); value != "" {
			values.Set(key, value)
		}
	}
	return values
}
