package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Winmix713/hekoprot2/internal/config"
	"github.com/Winmix713/hekoprot2/internal/infrastructure/session"
	"github.com/Winmix713/hekoprot2/internal/platform/logging"
)

func testConfig(t *testing.T, baseURL string) config.Config {
	t.Helper()

	return config.Config{
		AppEnv:         config.EnvDev,
		ServiceName:    "predictctl",
		ServiceVersion: "test",
		APIBaseURL:     baseURL,
		APITimeout:     2 * time.Second,
		SessionBackend: config.SessionBackendFile,
		SessionFile:    filepath.Join(t.TempDir(), "session.json"),
		SessionKey:     config.DefaultSessionKey,
		ImportWorkers:  2,
	}
}

func TestNew_HydratesPersistedToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	}))
	defer server.Close()

	ctx := context.Background()
	cfg := testConfig(t, server.URL)
	if err := session.NewFileStore(cfg.SessionFile).Set(ctx, cfg.SessionKey, "persisted"); err != nil {
		t.Fatalf("seed session file: %v", err)
	}

	a, err := New(ctx, cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer func() {
		if err := a.Close(ctx); err != nil {
			t.Fatalf("close app: %v", err)
		}
	}()

	if _, err := a.Client.HealthCheck(ctx); err != nil {
		t.Fatalf("health check: %v", err)
	}
	if gotAuth != "Bearer persisted" {
		t.Fatalf("unexpected Authorization header: %q", gotAuth)
	}
	if a.Dashboard == nil || a.Importer == nil {
		t.Fatalf("expected services to be wired")
	}
}

func TestNewSessionStore_Backends(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "http://localhost:8000")

	cfg.SessionBackend = config.SessionBackendMemory
	store, closeStore, err := NewSessionStore(ctx, cfg)
	if err != nil {
		t.Fatalf("memory store: %v", err)
	}
	if _, ok := store.(*session.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}
	if err := closeStore(ctx); err != nil {
		t.Fatalf("close memory store: %v", err)
	}

	cfg.SessionBackend = config.SessionBackendFile
	store, _, err = NewSessionStore(ctx, cfg)
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	fileStore, ok := store.(*session.FileStore)
	if !ok || fileStore.Path() != cfg.SessionFile {
		t.Fatalf("unexpected file store: %T", store)
	}

	cfg.SessionBackend = config.SessionBackendRedis
	cfg.SessionRedisURL = "not-a-redis-url"
	if _, _, err := NewSessionStore(ctx, cfg); err == nil {
		t.Fatalf("expected error for invalid redis url")
	}

	cfg.SessionBackend = "etcd"
	if _, _, err := NewSessionStore(ctx, cfg); err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
}
