package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/Winmix713/hekoprot2/internal/domain/prediction"
	"github.com/Winmix713/hekoprot2/internal/platform/logging"
)

const (
	importStatusCreated = "created"
	importStatusFailed  = "failed"
)

type ImportRowResult struct {
	Row        int
	Input      prediction.CreateInput
	Prediction *prediction.Prediction
	Status     string
	Message    string
	DurationMs int64
}

type ImportResult struct {
	Rows         []ImportRowResult
	CreatedCount int
	FailedCount  int
}

// PredictionImportService creates predictions in bulk, one request per row.
type PredictionImportService struct {
	api     PredictorAPI
	workers int
	logger  *logging.Logger
}

func NewPredictionImportService(api PredictorAPI, workers int, logger *logging.Logger) *PredictionImportService {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PredictionImportService{api: api, workers: workers, logger: logger}
}

// Import never stops on a failed row; results keep the input order.
func (s *PredictionImportService) Import(ctx context.Context, inputs []prediction.CreateInput) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionImportService.Import")
	defer span.End()

	if len(inputs) == 0 {
		return ImportResult{}, fmt.Errorf("%w: no predictions to import", ErrInvalidInput)
	}

	workerCount := s.workers
	if workerCount > len(inputs) {
		workerCount = len(inputs)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make([]ImportRowResult, len(inputs))
	var createdCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for i, input := range inputs {
		i, input := i, input
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ImportRowResult{Row: i + 1, Input: input}
			created, err := s.api.CreatePrediction(ctx, input)
			if err != nil {
				row.Status = importStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "import prediction failed", "row", row.Row, "match_id", input.MatchID, "error", err)
			} else {
				row.Status = importStatusCreated
				row.Prediction = &created
				createdCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			rows[i] = row
		}); err != nil {
			workers.Done()
			workers.Wait()
			return ImportResult{}, fmt.Errorf("submit row %d to worker pool: %w", i+1, err)
		}
	}
	workers.Wait()

	result := ImportResult{
		Rows:         rows,
		CreatedCount: int(createdCount.Load()),
		FailedCount:  int(failedCount.Load()),
	}
	s.logger.InfoContext(ctx, "prediction import finished",
		"rows", len(rows),
		"created", result.CreatedCount,
		"failed", result.FailedCount,
	)
	return result, nil
}
