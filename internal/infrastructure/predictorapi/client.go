package predictorapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Winmix713/hekoprot2/internal/infrastructure/session"
	"github.com/Winmix713/hekoprot2/internal/platform/id"
	"github.com/Winmix713/hekoprot2/internal/platform/logging"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 8 << 20
	maxPreviewBody   = 4096

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Config configures a Client. Session wins over SessionStore; when only
// SessionStore is set the client builds its own session over it.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	HTTPClient   *http.Client
	Session      *session.Session
	SessionStore session.Store
	SessionKey   string
	Logger       *logging.Logger
	UserAgent    string
	RequestIDs   id.Generator
}

// Client talks to the prediction backend. All methods are safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    *session.Session
	logger     *logging.Logger
	userAgent  string
	requestIDs id.Generator
}

// Request describes one call. Form, when set, is sent form-encoded and Body is
// ignored.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Form   url.Values
}

// NewClient builds a client. A session created here from cfg.SessionStore is
// hydrated before NewClient returns; a caller-supplied Session is used as is and
// must be hydrated by the caller.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var httpClient http.Client
	if cfg.HTTPClient != nil {
		httpClient = *cfg.HTTPClient
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	httpClient.Transport = otelhttp.NewTransport(base)

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	requestIDs := cfg.RequestIDs
	if requestIDs == nil {
		requestIDs = id.NewUUIDGenerator()
	}

	sess := cfg.Session
	if sess == nil {
		sess = session.New(cfg.SessionStore, cfg.SessionKey, logger.Named("session"))
		if cfg.SessionStore != nil {
			if err := sess.Hydrate(context.Background()); err != nil {
				logger.Warn("hydrate session failed, starting unauthenticated", "error", err)
			}
		}
	}

	return &Client{
		httpClient: &httpClient,
		baseURL:    baseURL,
		session:    sess,
		logger:     logger.Named("predictorapi"),
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		requestIDs: requestIDs,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Session() *session.Session {
	return c.session
}

// Do issues a custom request and decodes the JSON body into out when out is not nil.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	return c.call(ctx, "predictorapi.Client.Do", req, out)
}

func (c *Client) call(ctx context.Context, spanName string, req Request, out any) error {
	ctx, span := startSpan(ctx, spanName)
	defer span.End()
	if span.IsRecording() {
		span.SetAttributes(spanAttributes(req.Method, req.Path)...)
	}

	err := c.do(ctx, req, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Client) do(ctx context.Context, req Request, out any) error {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	fullURL := c.buildURL(req.Path, req.Query)

	var (
		payload     []byte
		contentType = contentTypeJSON
	)
	switch {
	case req.Form != nil:
		payload = []byte(req.Form.Encode())
		contentType = contentTypeForm
	case req.Body != nil:
		encoded, err := sonic.Marshal(req.Body)
		if err != nil {
			return newTransportError(crerr.Wrap(err, "encode request body"))
		}
		payload = encoded
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return newTransportError(crerr.Wrap(err, "build request"))
	}

	requestID := c.requestIDs.NewID()
	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if token := c.session.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	if c.logger.Enabled(logging.LevelDebug) {
		c.logger.DebugContext(ctx, "api request",
			"request_id", requestID,
			"curl_preview", buildCurlPreview(httpReq, payload),
		)
	}

	startedAt := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "api request failed",
			"method", method,
			"path", req.Path,
			"request_id", requestID,
			"error", err,
		)
		return newTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		c.expireSession(ctx)
	}

	raw, err := readBody(resp.Body)
	if err != nil {
		wrapped := crerr.Wrap(err, "read response body")
		return &Error{Message: wrapped.Error(), Status: resp.StatusCode, cause: wrapped}
	}

	c.logger.DebugContext(ctx, "api response",
		"method", method,
		"path", req.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(startedAt),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return newDecodeError(resp.StatusCode, raw, err)
	}
	return nil
}

func (c *Client) expireSession(ctx context.Context) {
	c.logger.WarnContext(ctx, "authentication expired, please login again")
	if err := c.session.Clear(ctx); err != nil {
		c.logger.ErrorContext(ctx, "clear expired session failed", "error", err)
	}
}

func (c *Client) buildURL(path string, query url.Values) string {
	path = strings.TrimSpace(path)
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	return fullURL
}

func readBody(r io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(r, maxResponseBytes+1)); err != nil {
		return nil, err
	}
	if buf.Len() > maxResponseBytes {
		return nil, errBodyTooLarge
	}
	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func buildCurlPreview(req *http.Request, payload []byte) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("curl -X ")
	_, _ = buf.WriteString(req.Method)
	_, _ = buf.WriteString(" ")
	_, _ = buf.WriteString(shellQuote(req.URL.String()))

	for _, name := range []string{"Accept", "Content-Type", "X-Request-ID", "Authorization"} {
		value := req.Header.Get(name)
		if value == "" {
			continue
		}
		if name == "Authorization" {
			value = "Bearer ***"
		}
		_, _ = buf.WriteString(" -H ")
		_, _ = buf.WriteString(shellQuote(name + ": " + value))
	}

	if len(payload) > 0 {
		text := string(payload)
		if req.Header.Get("Content-Type") == contentTypeForm {
			text = redactForm(text)
		}
		if len(text) > maxPreviewBody {
			text = text[:maxPreviewBody] + "...(truncated)"
		}
		_, _ = buf.WriteString(" --data ")
		_, _ = buf.WriteString(shellQuote(text))
	}

	return buf.String()
}

func redactForm(encoded string) string {
	values, err := url.ParseQuery(encoded)
	if err != nil {
		return "REDACTED"
	}
	if values.Has("password") {
		values.Set("password", "REDACTED")
	}
	return values.Encode()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}

func spanAttributes(method, path string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	}
}
