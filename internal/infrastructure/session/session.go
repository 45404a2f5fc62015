package session

import (
	"context"
	"strings"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/Winmix713/hekoprot2/internal/platform/logging"
)

// DefaultKey is the store key used when New is given an empty one.
const DefaultKey = "access_token"

// Session holds the bearer token of one API client. The in-memory copy is the
// source of truth for outgoing requests; the store only makes it survive restarts.
type Session struct {
	mu     sync.RWMutex
	store  Store
	key    string
	token  string
	logger *logging.Logger
}

func New(store Store, key string, logger *logging.Logger) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	if logger == nil {
		logger = logging.Default()
	}
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultKey
	}
	return &Session{
		store:  store,
		key:    key,
		logger: logger,
	}
}

// Hydrate loads a previously persisted token. A missing key leaves the session
// unauthenticated.
func (s *Session) Hydrate(ctx context.Context) error {
	token, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return crerr.Wrap(err, "hydrate session")
	}

	s.mu.Lock()
	if ok {
		s.token = strings.TrimSpace(token)
	} else {
		s.token = ""
	}
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "session hydrated", "authenticated", ok && token != "")
	return nil
}

func (s *Session) Key() string {
	return s.key
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

func (s *Session) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return crerr.New("token is empty")
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.store.Set(ctx, s.key, token); err != nil {
		return crerr.Wrap(err, "persist session token")
	}
	return nil
}

func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Delete(ctx, s.key); err != nil {
		return crerr.Wrap(err, "delete session token")
	}
	return nil
}
