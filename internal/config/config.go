package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	CORS       CORSConfig       `yaml:"cors"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Report     ReportConfig     `yaml:"report"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	// WriteTimeout must exceed Report.Timeout.
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"31m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// MaxConcurrentReports caps cognate reports running at once; extra requests get 429.
	MaxConcurrentReports int           `yaml:"max_concurrent_reports" env:"SERVER_MAX_CONCURRENT_REPORTS" env-default:"2"`
	RetryAfter           time.Duration `yaml:"retry_after"            env:"SERVER_RETRY_AFTER"            env-default:"30s"`
	// ReportsPerMinute is the per-client-IP request budget; 0 disables it.
	ReportsPerMinute int `yaml:"reports_per_minute" env:"SERVER_REPORTS_PER_MINUTE" env-default:"6"`
}

// CORSConfig holds cross-origin settings for browser clients.
type CORSConfig struct {
	// AllowedOrigins is a comma-separated list; "*" allows any origin, empty disables CORS.
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:""`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReportConfig holds cognate report settings.
type ReportConfig struct {
	// FetchSize is the number of rows pulled per FETCH from a server-side cursor.
	FetchSize int `yaml:"fetch_size"    env:"REPORT_FETCH_SIZE"    env-default:"100"`
	// DefaultLimit is the perspective page size when the caller gives none.
	DefaultLimit int `yaml:"default_limit" env:"REPORT_DEFAULT_LIMIT" env-default:"10"`
	// LocaleLimit bounds the locale ids whose field titles take part in classification.
	LocaleLimit int `yaml:"locale_limit"  env:"REPORT_LOCALE_LIMIT"  env-default:"2"`
	// Timeout bounds one report run, including its read transaction.
	Timeout time.Duration `yaml:"timeout" env:"REPORT_TIMEOUT" env-default:"30m"`
}

// ClassifierConfig holds the keyword lists used to pick the transcription and
// translation fields of a perspective, and the id of the cognate-link field.
type ClassifierConfig struct {
	TranscriptionKeywords []string `yaml:"transcription_keywords" env:"CLASSIFIER_TRANSCRIPTION_KEYWORDS" env-default:"transcription,word,транскрипция,слово,лексема,праформа"`
	TranslationKeywords   []string `yaml:"translation_keywords"   env:"CLASSIFIER_TRANSLATION_KEYWORDS"   env-default:"translation,meaning,перевод,значение"`
	ExcludeKeywords       []string `yaml:"exclude_keywords"       env:"CLASSIFIER_EXCLUDE_KEYWORDS"       env-default:"affix"`
	CognateFieldClientID  int64    `yaml:"cognate_field_client_id" env:"CLASSIFIER_COGNATE_FIELD_CLIENT_ID" env-default:"66"`
	CognateFieldObjectID  int64    `yaml:"cognate_field_object_id" env:"CLASSIFIER_COGNATE_FIELD_OBJECT_ID" env-default:"25"`
}
