package app

import (
	"context"
	"fmt"

	"github.com/Winmix713/hekoprot2/internal/config"
	"github.com/Winmix713/hekoprot2/internal/infrastructure/predictorapi"
	"github.com/Winmix713/hekoprot2/internal/infrastructure/session"
	"github.com/Winmix713/hekoprot2/internal/observability"
	"github.com/Winmix713/hekoprot2/internal/platform/logging"
	"github.com/Winmix713/hekoprot2/internal/usecase"
)

// App is the wired object graph behind one CLI invocation.
type App struct {
	Config    config.Config
	Logger    *logging.Logger
	Client    *predictorapi.Client
	Dashboard *usecase.DashboardService
	Importer  *usecase.PredictionImportService

	closers []func(context.Context) error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{Config: cfg, Logger: logger}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	a.closers = append(a.closers, shutdownTracing)

	store, closeStore, err := NewSessionStore(ctx, cfg)
	if err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("build session store: %w", err)
	}
	a.closers = append(a.closers, closeStore)

	sess := session.New(store, cfg.SessionKey, logger.Named("session"))
	if err := sess.Hydrate(ctx); err != nil {
		// commands still run unauthenticated when the store cannot be read
		logger.WarnContext(ctx, "hydrate session failed", "backend", cfg.SessionBackend, "error", err)
	}

	a.Client = predictorapi.NewClient(predictorapi.Config{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.APITimeout,
		Session:   sess,
		Logger:    logger,
		UserAgent: cfg.ServiceName + "/" + cfg.ServiceVersion,
	})
	a.Dashboard = usecase.NewDashboardService(a.Client, logger.Named("dashboard"))
	a.Importer = usecase.NewPredictionImportService(a.Client, cfg.ImportWorkers, logger.Named("import"))

	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close(ctx context.Context) error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

// NewSessionStore opens the store selected by SESSION_BACKEND.
func NewSessionStore(ctx context.Context, cfg config.Config) (session.Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.SessionBackend {
	case config.SessionBackendMemory:
		return session.NewMemoryStore(), noop, nil
	case config.SessionBackendFile, "":
		return session.NewFileStore(cfg.SessionFile), noop, nil
	case config.SessionBackendRedis:
		store, err := session.NewRedisStoreFromURL(ctx, cfg.SessionRedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store, func(context.Context) error { return store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported session backend %q", cfg.SessionBackend)
	}
}
