package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/Winmix713/hekoprot2/internal/infrastructure/session"
	"github.com/Winmix713/hekoprot2/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	SessionBackendFile   = "file"
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

const (
	DefaultAPIBaseURL = "http://localhost:8000"
	DefaultAPITimeout = 30 * time.Second
	DefaultSessionKey = session.DefaultKey
)

// Config stores runtime configuration for the CLI and the API client.
type Config struct {
	AppEnv          string        `validate:"oneof=dev stage prod"`
	ServiceName     string        `validate:"required"`
	ServiceVersion  string        `validate:"required"`
	LogLevel        logging.Level `validate:"-"`
	LogFormat       string        `validate:"oneof=console json"`
	APIBaseURL      string        `validate:"required,http_url"`
	APITimeout      time.Duration `validate:"gt=0"`
	SessionBackend  string        `validate:"oneof=file memory redis"`
	SessionFile     string        `validate:"required_if=SessionBackend file"`
	SessionRedisURL string        `validate:"required_if=SessionBackend redis,omitempty,url"`
	SessionKey      string        `validate:"required"`
	ImportWorkers   int           `validate:"gte=1,lte=64"`
	UptraceEnabled  bool          `validate:"-"`
	UptraceDSN      string        `validate:"required_if=UptraceEnabled true"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Load() (Config, error) {
	appEnv := strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", EnvDev)))

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", DefaultAPITimeout.String()))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_TIMEOUT: %w", err)
	}

	importWorkers, err := getEnvAsInt("IMPORT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_WORKERS: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	sessionFile := strings.TrimSpace(getEnv("SESSION_FILE", ""))
	if sessionFile == "" {
		sessionFile = defaultSessionFile()
	}

	cfg := Config{
		AppEnv:          appEnv,
		ServiceName:     strings.TrimSpace(getEnv("APP_SERVICE_NAME", "predictctl")),
		ServiceVersion:  strings.TrimSpace(getEnv("APP_SERVICE_VERSION", "dev")),
		LogLevel:        logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_FORMAT", logging.FormatConsole))),
		APIBaseURL:      strings.TrimRight(strings.TrimSpace(getEnv("API_BASE_URL", DefaultAPIBaseURL)), "/"),
		APITimeout:      apiTimeout,
		SessionBackend:  strings.ToLower(strings.TrimSpace(getEnv("SESSION_BACKEND", SessionBackendFile))),
		SessionFile:     sessionFile,
		SessionRedisURL: strings.TrimSpace(getEnv("SESSION_REDIS_URL", "")),
		SessionKey:      strings.TrimSpace(getEnv("SESSION_KEY", DefaultSessionKey)),
		ImportWorkers:   importWorkers,
		UptraceEnabled:  uptraceEnabled,
		UptraceDSN:      strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field by its environment variable name.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !crerr.As(err, &verrs) || len(verrs) == 0 {
		return crerr.Wrap(err, "validate config")
	}

	first := verrs[0]
	return crerr.Newf("invalid %s: failed %q check (value %v)", envNameByField[first.StructField()], first.Tag(), first.Value())
}

var envNameByField = map[string]string{
	"AppEnv":          "APP_ENV",
	"ServiceName":     "APP_SERVICE_NAME",
	"ServiceVersion":  "APP_SERVICE_VERSION",
	"LogFormat":       "APP_LOG_FORMAT",
	"APIBaseURL":      "API_BASE_URL",
	"APITimeout":      "API_TIMEOUT",
	"SessionBackend":  "SESSION_BACKEND",
	"SessionFile":     "SESSION_FILE",
	"SessionRedisURL": "SESSION_REDIS_URL",
	"SessionKey":      "SESSION_KEY",
	"ImportWorkers":   "IMPORT_WORKERS",
	"UptraceDSN":      "UPTRACE_DSN",
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(dir) == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "hekoprot2", "session.json")
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
