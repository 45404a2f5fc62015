// Package fetch turns a blocking call into an observable {data, loading, error}
// state cell that re-runs when its parameters change.
package fetch

import (
	"context"
	"reflect"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Winmix713/hekoprot2/internal/platform/logging"
)

const fallbackErrorMessage = "an error occurred"

var ErrClosed = crerr.New("fetch: query closed")

type Func[P, T any] func(ctx context.Context, params P) (T, error)

type State[T any] struct {
	Data    T
	Loading bool
	Error   string

	err error
}

func (s State[T]) HasError() bool {
	return s.Error != ""
}

// Err returns the error the last sequence failed with, or nil. Error is its
// normalised message.
func (s State[T]) Err() error {
	if s.err == nil && s.Error != "" {
		return crerr.New(s.Error)
	}
	return s.err
}

// Options configures automatic runs. Deferred disables the run on construction
// and on parameter changes; Refetch always runs. Enabled, when set, must also
// return true for an automatic run to start.
type Options[P any] struct {
	Deferred bool
	Enabled  func(P) bool
	Name     string
	Logger   *logging.Logger
}

// Query owns one state cell. Every run is a sequence numbered in issue order and
// only the latest issued sequence may write the state; older ones are discarded
// when they settle.
type Query[P, T any] struct {
	fn       Func[P, T]
	deferred bool
	enabled  func(P) bool
	name     string
	logger   *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     conc.WaitGroup

	mu      sync.Mutex
	params  P
	state   State[T]
	issued  uint64
	changed chan struct{}
	closed  bool
}

func New[P, T any](ctx context.Context, fn Func[P, T], params P, opts Options[P]) *Query[P, T] {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = "query"
	}

	qctx, cancel := context.WithCancel(ctx)
	q := &Query[P, T]{
		fn:       fn,
		deferred: opts.Deferred,
		enabled:  opts.Enabled,
		name:     name,
		logger:   logger,
		ctx:      qctx,
		cancel:   cancel,
		params:   params,
		changed:  make(chan struct{}),
	}

	q.mu.Lock()
	if q.autoRunLocked() {
		q.startLocked()
	}
	q.mu.Unlock()

	return q
}

// NewFunc adapts a call without parameters.
func NewFunc[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts Options[struct{}]) *Query[struct{}, T] {
	return New(ctx, func(ctx context.Context, _ struct{}) (T, error) {
		return fn(ctx)
	}, struct{}{}, opts)
}

func (q *Query[P, T]) State() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

func (q *Query[P, T]) Params() P {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.params
}

// Refetch starts a new sequence with the current parameters.
func (q *Query[P, T]) Refetch() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.startLocked()
}

// SetParams replaces the parameters and reports whether they differed
// structurally from the previous ones. Only a change can start a sequence.
func (q *Query[P, T]) SetParams(params P) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || reflect.DeepEqual(q.params, params) {
		return false
	}

	q.params = params
	if q.autoRunLocked() {
		q.startLocked()
	}
	return true
}

// Changes returns a channel closed on the next state transition.
func (q *Query[P, T]) Changes() <-chan struct{} {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.changed
}

// Wait blocks until no sequence is loading.
func (q *Query[P, T]) Wait(ctx context.Context) (State[T], error) {
	for {
		q.mu.Lock()
		state, closed, changed := q.state, q.closed, q.changed
		q.mu.Unlock()

		if !state.Loading {
			return state, nil
		}
		if closed {
			return state, ErrClosed
		}

		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-changed:
		}
	}
}

// Close cancels in-flight sequences, waits for them and drops their results.
func (q *Query[P, T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.cancel()
	q.notifyLocked()
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *Query[P, T]) autoRunLocked() bool {
	if q.deferred {
		return false
	}
	return q.enabled == nil || q.enabled(q.params)
}

func (q *Query[P, T]) startLocked() {
	q.issued++
	seq := q.issued
	params := q.params

	q.state.Loading = true
	q.state.Error = ""
	q.state.err = nil
	q.notifyLocked()

	q.wg.Go(func() {
		q.run(seq, params)
	})
}

func (q *Query[P, T]) run(seq uint64, params P) {
	ctx, span := startSpan(q.ctx, "fetch.Query."+q.name)
	span.SetAttributes(attribute.Int64("fetch.sequence", int64(seq)))
	data, err := q.fn(ctx, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	if seq != q.issued {
		q.logger.DebugContext(ctx, "fetch sequence superseded", "query", q.name, "sequence", seq, "latest", q.issued)
		return
	}

	if err != nil {
		var zero T
		q.state = State[T]{Data: zero, Error: errorMessage(err), err: err}
		q.logger.DebugContext(ctx, "fetch sequence failed", "query", q.name, "sequence", seq, "error", err)
	} else {
		q.state = State[T]{Data: data}
	}
	q.notifyLocked()
}

func (q *Query[P, T]) notifyLocked() {
	close(q.changed)
	q.changed = make(chan struct{})
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallbackErrorMessage
}
