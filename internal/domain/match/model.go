package match

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Winmix713/hekoprot2/internal/domain"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
)

const (
	WinnerHome = "home"
	WinnerAway = "away"
	WinnerDraw = "draw"
)

type TeamInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ShortCode string    `json:"short_code"`
	LogoURL   *string   `json:"logo_url"`
}

type SeasonInfo struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

// Match is one fixture as served by the matches resource.
type Match struct {
	ID                uuid.UUID        `json:"id"`
	HomeTeamID        uuid.UUID        `json:"home_team_id"`
	AwayTeamID        uuid.UUID        `json:"away_team_id"`
	SeasonID          uuid.UUID        `json:"season_id"`
	MatchDate         domain.Timestamp `json:"match_date"`
	HomeGoals         *int             `json:"home_goals"`
	AwayGoals         *int             `json:"away_goals"`
	Status            Status           `json:"status"`
	Winner            *string          `json:"winner"`
	Attendance        *int             `json:"attendance"`
	Referee           *string          `json:"referee"`
	Venue             *string          `json:"venue,omitempty"`
	WeatherConditions domain.Document  `json:"weather_conditions"`
	IsDeleted         bool             `json:"is_deleted"`
	CreatedAt         domain.Timestamp `json:"created_at"`
	UpdatedAt         domain.Timestamp `json:"updated_at"`
	HomeTeam          TeamInfo         `json:"home_team"`
	AwayTeam          TeamInfo         `json:"away_team"`
	Season            SeasonInfo       `json:"season"`
}

// Score renders "h-a", or "-" before kickoff.
func (m Match) Score() string {
	if m.HomeGoals == nil || m.AwayGoals == nil {
		return "-"
	}
	return strconv.Itoa(*m.HomeGoals) + "-" + strconv.Itoa(*m.AwayGoals)
}

type List struct {
	Matches []Match `json:"matches"`
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	Size    int     `json:"size"`
	Pages   int     `json:"pages"`
}

type Stats struct {
	TotalMatches         int     `json:"total_matches"`
	FinishedMatches      int     `json:"finished_matches"`
	UpcomingMatches      int     `json:"upcoming_matches"`
	LiveMatches          int     `json:"live_matches"`
	AverageGoalsPerMatch float64 `json:"average_goals_per_match"`
	HomeWinPercentage    float64 `json:"home_win_percentage"`
	AwayWinPercentage    float64 `json:"away_win_percentage"`
	DrawPercentage       float64 `json:"draw_percentage"`
}

// Filter narrows the match list. Zero fields are not sent.
type Filter struct {
	Page     int
	Size     int
	Status   Status
	TeamID   string
	SeasonID string
	DateFrom string
	DateTo   string
}

func (f Filter) Values() url.Values {
	values := url.Values{}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		values.Set("size", strconv.Itoa(f.Size))
	}
	setString(values, "status", string(f.Status))
	setString(values, "team_id", f.TeamID)
	setString(values, "season_id", f.SeasonID)
	setString(values, "date_from", f.DateFrom)
	setString(values, "date_to", f.DateTo)
	return values
}

func NormalizeStatus(value string) Status {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsLiveStatus(status Status) bool {
	return NormalizeStatus(string(status)) == StatusLive
}

func IsFinishedStatus(status Status) bool {
	return NormalizeStatus(string(status)) == StatusFinished
}

func setString(values url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		values.Set(key, value)
	}
}
