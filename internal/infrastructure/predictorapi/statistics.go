package predictorapi

import (
	"context"
	"net/url"

	"github.com/Winmix713/hekoprot2/internal/domain/statistics"
)

func (c *Client) GetLeagueTable(ctx context.Context, seasonID string) ([]statistics.LeagueTableRow, error) {
	var out []statistics.LeagueTableRow
	err := c.call(ctx, "predictorapi.Client.GetLeagueTable", Request{
		Path:  "/statistics/league-table",
		Query: seasonQuery(seasonID),
	}, &out)
	return out, err
}

func (c *Client) GetTeamStats(ctx context.Context, teamID string, filter statistics.TeamStatsFilter) (statistics.TeamStats, error) {
	var out statistics.TeamStats
	err := c.call(ctx, "predictorapi.Client.GetTeamStats", Request{
		Path:  "/statistics/team-stats/" + url.PathEscape(teamID),
		Query: filter.Values(),
	}, &out)
	return out, err
}

func (c *Client) GetTeamAnalysis(ctx context.Context, homeTeamID, awayTeamID, seasonID string) (statistics.TeamAnalysis, error) {
	query := seasonQuery(seasonID)
	query.Set("home_team_id", homeTeamID)
	query.Set("away_team_id", awayTeamID)

	var out statistics.TeamAnalysis
	err := c.call(ctx, "predictorapi.Client.GetTeamAnalysis", Request{
		Path:  "/statistics/team-analysis",
		Query: query,
	}, &out)
	return out, err
}

func (c *Client) GetMatchPrediction(ctx context.Context, homeTeamID, awayTeamID string) (statistics.MatchPrediction, error) {
	query := url.Values{}
	query.Set("home_team_id", homeTeamID)
	query.Set("away_team_id", awayTeamID)

	var out statistics.MatchPrediction
	err := c.call(ctx, "predictorapi.Client.GetMatchPrediction", Request{
		Path:  "/statistics/prediction",
		Query: query,
	}, &out)
	return out, err
}

func (c *Client) GetMatchStatistics(ctx context.Context, filter statistics.MatchStatsFilter) (statistics.MatchStatistics, error) {
	var out statistics.MatchStatistics
	err := c.call(ctx, "predictorapi.Client.GetMatchStatistics", Request{
		Path:  "/statistics/match-stats",
		Query: filter.Values(),
	}, &out)
	return out, err
}
