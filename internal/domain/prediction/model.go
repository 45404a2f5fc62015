package prediction

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Winmix713/hekoprot2/internal/domain"
)

const (
	ResultPending = "pending"
	ResultCorrect = "correct"
	ResultWrong   = "wrong"
)

// MatchInfo is the match summary embedded in each prediction.
type MatchInfo struct {
	ID           uuid.UUID        `json:"id"`
	HomeTeamName string           `json:"home_team_name"`
	AwayTeamName string           `json:"away_team_name"`
	MatchDate    domain.Timestamp `json:"match_date"`
	Status       string           `json:"status"`
	HomeGoals    *int             `json:"home_goals"`
	AwayGoals    *int             `json:"away_goals"`
	Winner       *string          `json:"winner"`
}

type ModelInfo struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Version   string              `json:"version"`
	Algorithm string              `json:"algorithm"`
	Accuracy  decimal.NullDecimal `json:"accuracy"`
}

type Prediction struct {
	ID                 uuid.UUID           `json:"id"`
	BatchID            uuid.UUID           `json:"batch_id"`
	MatchID            uuid.UUID           `json:"match_id"`
	PredictedWinner    *string             `json:"predicted_winner"`
	HomeExpectedGoals  decimal.NullDecimal `json:"home_expected_goals"`
	AwayExpectedGoals  decimal.NullDecimal `json:"away_expected_goals"`
	HomeWinProbability decimal.NullDecimal `json:"home_win_probability"`
	DrawProbability    decimal.NullDecimal `json:"draw_probability"`
	AwayWinProbability decimal.NullDecimal `json:"away_win_probability"`
	ConfidenceScore    decimal.Decimal     `json:"confidence_score"`
	FeaturesUsed       domain.Document     `json:"features_used"`
	ResultStatus       string              `json:"result_status"`
	CreatedAt          domain.Timestamp    `json:"created_at"`
	Match              MatchInfo           `json:"match"`
	Model              *ModelInfo          `json:"model,omitempty"`
}

// Settled reports whether the match outcome has been evaluated.
func (p Prediction) Settled() bool {
	return p.ResultStatus == ResultCorrect || p.ResultStatus == ResultWrong
}

// Correct is only meaningful once Settled is true.
func (p Prediction) Correct() bool {
	return p.ResultStatus == ResultCorrect
}

type List struct {
	Predictions []Prediction `json:"predictions"`
	Total       int          `json:"total"`
	Page        int          `json:"page"`
	Size        int          `json:"size"`
	Pages       int          `json:"pages"`
}

// CreateInput is the body of a manual prediction.
type CreateInput struct {
	MatchID          string             `json:"match_id"`
	ModelID          string             `json:"model_id"`
	PredictionType   string             `json:"prediction_type"`
	PredictedOutcome string             `json:"predicted_outcome"`
	Confidence       decimal.Decimal    `json:"confidence"`
	Odds             map[string]float64 `json:"odds,omitempty"`
}

type Filter struct {
	Page          int
	Size          int
	Status        string
	ModelID       string
	ConfidenceMin *decimal.Decimal
}

func (f Filter) Values() url.Values {
	values := url.Values{}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		values.Set("size", strconv.Itoa(f.Size))
	}
	if status := strings.TrimSpace(f.Status); status != "" {
		values.Set("status", status)
	}
	if modelID := strings.TrimSpace(f.ModelID); modelID != "" {
		values.Set("model_id", modelID)
	}
	if f.ConfidenceMin != nil {
		values.Set("confidence_min", f.ConfidenceMin.String())
	}
	return values
}
