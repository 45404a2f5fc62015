package predictorapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Winmix713/hekoprot2/internal/domain/match"
	"github.com/Winmix713/hekoprot2/internal/domain/mlmodel"
	"github.com/Winmix713/hekoprot2/internal/domain/prediction"
	"github.com/Winmix713/hekoprot2/internal/infrastructure/session"
	"github.com/Winmix713/hekoprot2/internal/platform/id"
	"github.com/Winmix713/hekoprot2/internal/platform/logging"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

type fakeBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	server   *httptest.Server
}

func newFakeBackend(t *testing.T, handler http.HandlerFunc) *fakeBackend {
	t.Helper()

	b := &fakeBackend{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.requests = append(b.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		b.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) Requests() []recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]recordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newTestClient(t *testing.T, baseURL string, store session.Store) *Client {
	t.Helper()

	if store == nil {
		store = session.NewMemoryStore()
	}
	sess := session.New(store, "access_token", logging.NewNop())
	require.NoError(t, sess.Hydrate(context.Background()))

	return NewClient(Config{
		BaseURL: baseURL + "/",
		Timeout: 2 * time.Second,
		Session: sess,
		Logger:  logging.NewNop(),
	})
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	client := NewClient(Config{})
	require.Equal(t, DefaultBaseURL, client.BaseURL())
	require.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	require.NotNil(t, client.Session())
	require.False(t, client.Session().Authenticated())
}

func TestClient_SendsBearerTokenAndRequestID(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":"healthy"}`)
	})

	store := session.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "access_token", "T"))
	client := newTestClient(t, backend.server.URL, store)

	ctx := context.Background()
	_, err := client.HealthCheck(ctx)
	require.NoError(t, err)
	_, err = client.HealthCheck(ctx)
	require.NoError(t, err)

	reqs := backend.Requests()
	require.Len(t, reqs, 2)
	for _, req := range reqs {
		require.Equal(t, "Bearer T", req.Header.Get("Authorization"))
		require.Equal(t, "application/json", req.Header.Get("Accept"))
		_, err := uuid.Parse(req.Header.Get("X-Request-ID"))
		require.NoError(t, err)
	}
	require.NotEqual(t, reqs[0].Header.Get("X-Request-ID"), reqs[1].Header.Get("X-Request-ID"))
}

func TestClient_UsesConfiguredRequestIDs(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	client := NewClient(Config{
		BaseURL:    backend.server.URL,
		Logger:     logging.NewNop(),
		RequestIDs: id.GeneratorFunc(func() string { return "req-fixed" }),
	})

	_, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	require.Equal(t, "req-fixed", backend.Requests()[0].Header.Get("X-Request-ID"))
}

func TestClient_NoAuthorizationWithoutToken(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	client := newTestClient(t, backend.server.URL, nil)

	_, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	require.Empty(t, backend.Requests()[0].Header.Get("Authorization"))
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			writeJSON(w, http.StatusUnauthorized, `{"detail":"Could not validate credentials"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"status":"healthy"}`)
	})

	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "access_token", "expired"))
	client := newTestClient(t, backend.server.URL, store)

	_, err := client.GetSystemStatus(ctx)
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Could not validate credentials", apiErr.Message)
	require.True(t, IsUnauthorized(err))

	require.False(t, client.Session().Authenticated())
	_, stored, err := store.Get(ctx, "access_token")
	require.NoError(t, err)
	require.False(t, stored)

	_, err = client.HealthCheck(ctx)
	require.NoError(t, err)
	reqs := backend.Requests()
	require.Empty(t, reqs[len(reqs)-1].Header.Get("Authorization"))
}

func TestClient_OtherStatusesKeepSession(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		ctx := context.Background()
		store := session.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "access_token", "T"))
		client := newTestClient(t, backend.server.URL, store)

		_, err := client.GetMatch(ctx, "missing")
		require.Error(t, err)
		require.Equal(t, status, StatusOf(err))
		require.True(t, client.Session().Authenticated(), "status %d must not clear the session", status)
	}
}

func TestClient_ErrorMessageNormalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		message string
		data    any
	}{
		{
			name:    "string detail",
			status:  http.StatusNotFound,
			body:    `{"detail":"Match not found"}`,
			message: "Match not found",
		},
		{
			name:    "validation detail",
			status:  http.StatusUnprocessableEntity,
			body:    `{"detail":[{"loc":["query","size"],"msg":"too large"}]}`,
			message: `[{"loc":["query","size"],"msg":"too large"}]`,
		},
		{
			name:    "no detail",
			status:  http.StatusInternalServerError,
			body:    `{"error":"boom"}`,
			message: "request failed with status code 500",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			message: "request failed with status code 502",
			data:    "upstream down",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			client := newTestClient(t, backend.server.URL, nil)

			_, err := client.GetMatch(context.Background(), "m1")
			apiErr, ok := AsError(err)
			require.True(t, ok)
			require.Equal(t, tc.status, apiErr.Status)
			require.Equal(t, tc.message, apiErr.Message)
			require.NotNil(t, apiErr.Data)
			if tc.data != nil {
				require.Equal(t, tc.data, apiErr.Data)
			}
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := newTestClient(t, baseURL, nil)
	_, err := client.HealthCheck(context.Background())

	apiErr, ok := AsError(err)
	require.True(t, ok)
	require.Zero(t, apiErr.Status)
	require.NotEmpty(t, apiErr.Message)
	require.Nil(t, apiErr.Data)
}

func TestClient_DecodeFailureKeepsStatus(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"matches": "not-a-list"}`)
	})
	client := newTestClient(t, backend.server.URL, nil)

	_, err := client.ListMatches(context.Background(), match.Filter{})
	apiErr, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusOK, apiErr.Status)
	require.Contains(t, apiErr.Message, "decode response body")
}

func TestClient_ListMatchesForwardsFilter(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"matches":[{"id":"5f0c2b7a-9a43-4a43-9a9c-1d2f6c1a0b11","status":"live","home_goals":1,"away_goals":0,"match_date":"2024-03-01T19:45:00"}],"total":1,"page":1,"size":5,"pages":1}`)
	})
	client := newTestClient(t, backend.server.URL, nil)

	got, err := client.ListMatches(context.Background(), match.Filter{Status: match.StatusLive, Size: 5})
	require.NoError(t, err)
	require.Len(t, got.Matches, 1)
	require.Equal(t, "1-0", got.Matches[0].Score())
	require.Equal(t, 2024, got.Matches[0].MatchDate.Year())

	req := backend.Requests()[0]
	require.Equal(t, http.MethodGet, req.Method)
	require.Equal(t, "/matches", req.Path)
	require.Equal(t, "size=5&status=live", req.Query)
}

func TestClient_PathsAndQueries(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/statistics/league-table" {
			writeJSON(w, http.StatusOK, `[]`)
			return
		}
		writeJSON(w, http.StatusOK, `{}`)
	})
	client := newTestClient(t, backend.server.URL, nil)
	ctx := context.Background()

	_, err := client.GetMatchStats(ctx, "")
	require.NoError(t, err)
	_, err = client.GetLeagueTable(ctx, "s1")
	require.NoError(t, err)
	_, err = client.GetTeamAnalysis(ctx, "h1", "a1", "")
	require.NoError(t, err)
	_, err = client.GetMatchPrediction(ctx, "h1", "a1")
	require.NoError(t, err)
	_, err = client.GetModelPerformance(ctx, "m 1")
	require.NoError(t, err)
	_, err = client.ListPredictions(ctx, prediction.Filter{Size: 10})
	require.NoError(t, err)

	reqs := backend.Requests()
	require.Len(t, reqs, 6)
	require.Equal(t, "/matches/stats/overview", reqs[0].Path)
	require.Empty(t, reqs[0].Query)
	require.Equal(t, "season_id=s1", reqs[1].Query)
	require.Equal(t, "/statistics/team-analysis", reqs[2].Path)
	require.Equal(t, "away_team_id=a1&home_team_id=h1", reqs[2].Query)
	require.Equal(t, "/statistics/prediction", reqs[3].Path)
	require.Equal(t, "/models/m 1/performance", reqs[4].Path)
	require.Equal(t, "size=10", reqs[5].Query)
}

func TestClient_CreatePredictionSendsJSON(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"predicted_outcome":"home_win","confidence_score":"0.72"}`)
	})
	client := newTestClient(t, backend.server.URL, nil)

	got, err := client.CreatePrediction(context.Background(), prediction.CreateInput{
		MatchID:          "m1",
		ModelID:          "model-1",
		PredictionType:   "match_outcome",
		PredictedOutcome: "home_win",
		Confidence:       decimal.RequireFromString("0.72"),
	})
	require.NoError(t, err)
	require.True(t, got.ConfidenceScore.Equal(decimal.RequireFromString("0.72")))

	req := backend.Requests()[0]
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "application/json", req.Header.Get("Content-Type"))
	require.Contains(t, req.Body, `"match_id":"m1"`)
	require.Contains(t, req.Body, `"predicted_outcome":"home_win"`)
}

func TestClient_TrainModelWithoutConfigSendsNoBody(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusAccepted, `{"status":"training"}`)
	})
	client := newTestClient(t, backend.server.URL, nil)

	got, err := client.TrainModel(context.Background(), "model-1", mlmodel.TrainRequest{})
	require.NoError(t, err)
	require.Equal(t, "training", got["status"])

	req := backend.Requests()[0]
	require.Equal(t, "/models/model-1/train", req.Path)
	require.Empty(t, req.Body)
}

func TestClient_LoginStoresToken(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/token" {
			writeJSON(w, http.StatusOK, `{"access_token":"fresh","token_type":"bearer","expires_in":3600}`)
			return
		}
		writeJSON(w, http.StatusOK, `{}`)
	})

	ctx := context.Background()
	store := session.NewMemoryStore()
	client := newTestClient(t, backend.server.URL, store)

	token, err := client.Login(ctx, "admin@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "fresh", token.AccessToken)
	require.Equal(t, 3600, token.ExpiresIn)

	stored, ok, err := store.Get(ctx, "access_token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fresh", stored)

	_, err = client.HealthCheck(ctx)
	require.NoError(t, err)

	reqs := backend.Requests()
	require.Equal(t, "application/x-www-form-urlencoded", reqs[0].Header.Get("Content-Type"))
	require.Equal(t, "password=s3cret&username=admin%40example.com", reqs[0].Body)
	require.Equal(t, "Bearer fresh", reqs[1].Header.Get("Authorization"))

	require.NoError(t, client.Logout(ctx))
	require.False(t, client.Session().Authenticated())
	require.Len(t, backend.Requests(), 2, "logout must not call the backend")
}

func TestClient_LoginRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"token_type":"bearer"}`)
	})
	client := newTestClient(t, backend.server.URL, nil)

	_, err := client.Login(context.Background(), "a", "b")
	require.Error(t, err)
	require.False(t, client.Session().Authenticated())
}

func TestClient_DebugLogMasksSecrets(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"access_token":"fresh","token_type":"bearer"}`)
	})

	var logs bytes.Buffer
	logger := logging.New(logging.Options{Level: logging.LevelDebug, Format: logging.FormatJSON, Output: &logs})
	client := NewClient(Config{BaseURL: backend.server.URL, Logger: logger})

	_, err := client.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)
	_, err = client.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	out := logs.String()
	require.Contains(t, out, "curl -X POST")
	require.Contains(t, out, "Bearer ***")
	require.NotContains(t, out, "s3cret")
	require.False(t, strings.Contains(out, "Bearer fresh"))
}

func TestClient_LoginWithDefaultSession(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"access_token":"fresh","token_type":"bearer"}`)
	})
	client := NewClient(Config{BaseURL: backend.server.URL, Logger: logging.NewNop()})

	_, err := client.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)
	require.True(t, client.Session().Authenticated())
	require.Equal(t, session.DefaultKey, client.Session().Key())
}

func TestNewClient_HydratesFromSessionStore(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "token_key", "persisted"))

	client := NewClient(Config{
		BaseURL:      backend.server.URL,
		Logger:       logging.NewNop(),
		SessionStore: store,
		SessionKey:   "token_key",
	})
	require.True(t, client.Session().Authenticated())

	_, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer persisted", backend.Requests()[0].Header.Get("Authorization"))
}

func TestClient_OversizedBodyIsRejected(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(bytes.Repeat([]byte(" "), maxResponseBytes+1))
	})
	client := newTestClient(t, backend.server.URL, nil)

	_, err := client.HealthCheck(context.Background())
	require.Error(t, err)

	apiErr, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusOK, apiErr.Status)
	require.Contains(t, apiErr.Message, "exceeds limit")
	require.True(t, crerr.Is(err, errBodyTooLarge))
}

func TestReadBody_AcceptsBodyAtLimit(t *testing.T) {
	t.Parallel()

	raw, err := readBody(bytes.NewReader(bytes.Repeat([]byte("a"), maxResponseBytes)))
	require.NoError(t, err)
	require.Len(t, raw, maxResponseBytes)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	require.Zero(t, StatusOf(nil))
	require.False(t, IsUnauthorized(io.EOF))

	_, ok := AsError(io.EOF)
	require.False(t, ok)

	err := newStatusError(http.StatusTeapot, nil)
	require.Equal(t, "request failed with status code 418", err.Error())
	require.Nil(t, err.Data)

	require.Equal(t, fallbackErrorMessage, newTransportError(nil).Message)
}
