package predictorapi

import (
	"context"
	"net/url"
	"strings"

	"github.com/Winmix713/hekoprot2/internal/domain/match"
)

func (c *Client) ListMatches(ctx context.Context, filter match.Filter) (match.List, error) {
	var out match.List
	err := c.call(ctx, "predictorapi.Client.ListMatches", Request{
		Path:  "/matches",
		Query: filter.Values(),
	}, &out)
	return out, err
}

func (c *Client) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	var out match.Match
	err := c.call(ctx, "predictorapi.Client.GetMatch", Request{
		Path: "/matches/" + url.PathEscape(matchID),
	}, &out)
	return out, err
}

// GetMatchStats returns the overview counters; an empty seasonID means all seasons.
func (c *Client) GetMatchStats(ctx context.Context, seasonID string) (match.Stats, error) {
	var out match.Stats
	err := c.call(ctx, "predictorapi.Client.GetMatchStats", Request{
		Path:  "/matches/stats/overview",
		Query: seasonQuery(seasonID),
	}, &out)
	return out, err
}

func seasonQuery(seasonID string) url.Values {
	values := url.Values{}
	if seasonID = strings.TrimSpace(seasonID); seasonID != "" {
		values.Set("season_id", seasonID)
	}
	return values
}
