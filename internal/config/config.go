package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App         AppConfig
	RecordStore RecordStoreConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Geocoder    GeocoderConfig
	Matching    MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

const (
	BackendSheets   = "sheets"
	BackendWorkbook = "workbook"
	BackendPostgres = "postgres"
)

type RecordStoreConfig struct {
	Backend         string
	CredentialsPath string
	CandidatesSheet string
	JobsSheet       string
	CompaniesSheet  string
	WorkbookPath    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type GeocoderConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// RPS caps scoring fan-out at this many task starts per second. The
	// public Nominatim endpoint allows one request per second; 0 disables
	// the cap for self-hosted endpoints.
	RPS int
}

type MatchingConfig struct {
	Workers int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.RecordStore = RecordStoreConfig{
		Backend:         strings.ToLower(opt("RECORD_STORE_BACKEND", BackendSheets)),
		CredentialsPath: opt("SHEETS_CREDENTIALS_PATH", ""),
		CandidatesSheet: opt("CANDIDATES_SHEET_ID", ""),
		JobsSheet:       opt("JOBS_SHEET_ID", ""),
		CompaniesSheet:  opt("COMPANIES_SHEET_ID", ""),
		WorkbookPath:    opt("WORKBOOK_PATH", "records.xlsx"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST", "localhost"),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         opt("DB_NAME", ""),
		DBUser:         opt("DB_USER", ""),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout:        optSeconds("DB_CONNECT_TIMEOUT_SECONDS", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optSeconds("DB_POOL_MAX_CONN_LIFETIME_SECONDS", 0),
		PoolMaxConnIdleTime:   optSeconds("DB_POOL_MAX_CONN_IDLE_SECONDS", 0),
		PoolHealthCheckPeriod: optSeconds("DB_POOL_HEALTH_CHECK_SECONDS", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      optSeconds("REDIS_TTL", 600*time.Second),
	}

	cfg.Geocoder = GeocoderConfig{
		BaseURL:   opt("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		UserAgent: opt("GEOCODER_USER_AGENT", "candidate_matcher"),
		Timeout:   optSeconds("GEOCODER_TIMEOUT_SECONDS", 10*time.Second),
		RPS:       optInt("GEOCODER_RPS", 1),
	}

	cfg.Matching = MatchingConfig{
		Workers: optInt("MATCH_WORKERS", 4),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if err := cfg.RecordStore.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c RecordStoreConfig) validate() error {
	switch c.Backend {
	case BackendSheets:
		var missing []string
		if c.CredentialsPath == "" {
			missing = append(missing, "SHEETS_CREDENTIALS_PATH")
		}
		if c.CandidatesSheet == "" {
			missing = append(missing, "CANDIDATES_SHEET_ID")
		}
		if c.JobsSheet == "" {
			missing = append(missing, "JOBS_SHEET_ID")
		}
		if c.CompaniesSheet == "" {
			missing = append(missing, "COMPANIES_SHEET_ID")
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
		}
		return nil
	case BackendWorkbook, BackendPostgres:
		return nil
	default:
		return fmt.Errorf("unknown RECORD_STORE_BACKEND: %s", c.Backend)
	}
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func optSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
