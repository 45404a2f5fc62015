package mlmodel

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Winmix713/hekoprot2/internal/domain"
)

// Status is the lifecycle state shown on the models page.
type Status string

const (
	StatusActive   Status = "active"
	StatusTraining Status = "training"
	StatusInactive Status = "inactive"
	StatusError    Status = "error"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusTraining, StatusInactive, StatusError:
		return true
	default:
		return false
	}
}

type Model struct {
	ID               uuid.UUID           `json:"id"`
	Name             string              `json:"name"`
	Version          string              `json:"version"`
	Algorithm        string              `json:"algorithm"`
	Status           Status              `json:"status"`
	Parameters       domain.Document     `json:"parameters"`
	Features         []string            `json:"features"`
	TrainedAt        domain.Timestamp    `json:"trained_at"`
	Accuracy         decimal.NullDecimal `json:"accuracy"`
	PrecisionScore   decimal.NullDecimal `json:"precision_score"`
	RecallScore      decimal.NullDecimal `json:"recall_score"`
	F1Score          decimal.NullDecimal `json:"f1_score"`
	IsActive         bool                `json:"is_active"`
	Notes            *string             `json:"notes"`
	PredictionsCount int                 `json:"predictions_count"`
	CreatedAt        domain.Timestamp    `json:"created_at"`
	UpdatedAt        domain.Timestamp    `json:"updated_at"`
}

// EffectiveStatus falls back to the is_active flag when the backend omits status.
func (m Model) EffectiveStatus() Status {
	if m.Status.Valid() {
		return m.Status
	}
	if m.IsActive {
		return StatusActive
	}
	return StatusInactive
}

type List struct {
	Models []Model `json:"models"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
	Pages  int     `json:"pages"`
}

// TrainRequest is forwarded as the body of a training trigger.
type TrainRequest struct {
	TrainingConfig     domain.Document `json:"training_config,omitempty"`
	TrainingDataConfig domain.Document `json:"training_data_config,omitempty"`
}

type Filter struct {
	Page   int
	Size   int
	Status Status
}

func (f Filter) Values() url.Values {
	values := url.Values{}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.Size > 0 {
		values.Set("size", strconv.Itoa(f.Size))
	}
	if status := strings.TrimSpace(string(f.Status)); status != "" {
		values.Set("status", status)
	}
	return values
}
