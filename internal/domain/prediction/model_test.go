package prediction

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
)

func TestPredictionDecode_DecimalStringsAndNulls(t *testing.T) {
	raw := `{
		"id": "9a2b6f1e-0000-4f6a-8a51-2b9c7d1e0001",
		"batch_id": "9a2b6f1e-0000-4f6a-8a51-2b9c7d1e0002",
		"match_id": "9a2b6f1e-0000-4f6a-8a51-2b9c7d1e0003",
		"predicted_winner": "home",
		"home_win_probability": "0.5500",
		"draw_probability": 0.25,
		"away_win_probability": null,
		"confidence_score": "0.82",
		"result_status": "correct",
		"created_at": "2025-02-01T12:00:00",
		"match": {"id": "9a2b6f1e-0000-4f6a-8a51-2b9c7d1e0003", "home_team_name": "Debrecen", "away_team_name": "Paks", "match_date": "2025-02-02T18:00:00", "status": "finished"}
	}`

	var p Prediction
	if err := sonic.UnmarshalString(raw, &p); err != nil {
		t.Fatalf("decode prediction: %v", err)
	}
	if !p.ConfidenceScore.Equal(decimal.RequireFromString("0.82")) {
		t.Fatalf("unexpected confidence: %s", p.ConfidenceScore)
	}
	if !p.HomeWinProbability.Valid || !p.HomeWinProbability.Decimal.Equal(decimal.RequireFromString("0.55")) {
		t.Fatalf("unexpected home probability: %+v", p.HomeWinProbability)
	}
	if !p.DrawProbability.Valid {
		t.Fatalf("expected numeric draw probability to decode")
	}
	if p.AwayWinProbability.Valid {
		t.Fatalf("expected null away probability")
	}
	if !p.Settled() || !p.Correct() {
		t.Fatalf("expected settled correct prediction")
	}
}

func TestFilterValues(t *testing.T) {
	floor := decimal.RequireFromString("0.7")
	got := Filter{Size: 10, ModelID: "m-1", ConfidenceMin: &floor}.Values().Encode()
	if got != "confidence_min=0.7&model_id=m-1&size=10" {
		t.Fatalf("unexpected query: %s", got)
	}
}
