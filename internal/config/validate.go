package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if err := c.Classifier.validate(); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}

	if c.Server.WriteTimeout <= c.Report.Timeout {
		return fmt.Errorf("server: write_timeout (%v) must exceed report.timeout (%v)",
			c.Server.WriteTimeout, c.Report.Timeout)
	}

	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.MaxConcurrentReports <= 0 {
		return fmt.Errorf("max_concurrent_reports must be > 0 (got %d)", s.MaxConcurrentReports)
	}
	if s.ReportsPerMinute < 0 {
		return fmt.Errorf("reports_per_minute must be >= 0 (got %d)", s.ReportsPerMinute)
	}
	if s.RetryAfter < time.Second {
		return fmt.Errorf("retry_after must be at least 1s (got %v)", s.RetryAfter)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
}

func (r *ReportConfig) validate() error {
	if r.FetchSize <= 0 {
		return fmt.Errorf("fetch_size must be > 0 (got %d)", r.FetchSize)
	}
	if r.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", r.DefaultLimit)
	}
	if r.LocaleLimit <= 0 {
		return fmt.Errorf("locale_limit must be > 0 (got %d)", r.LocaleLimit)
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", r.Timeout)
	}
	return nil
}

func (c *ClassifierConfig) validate() error {
	if err := validateKeywords(c.TranscriptionKeywords); err != nil {
		return fmt.Errorf("transcription_keywords: %w", err)
	}
	if err := validateKeywords(c.TranslationKeywords); err != nil {
		return fmt.Errorf("translation_keywords: %w", err)
	}
	for _, kw := range c.ExcludeKeywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("exclude_keywords: empty keyword")
		}
	}
	if c.CognateFieldClientID == 0 && c.CognateFieldObjectID == 0 {
		return fmt.Errorf("cognate field id must be set")
	}
	return nil
}

func validateKeywords(keywords []string) error {
	if len(keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("empty keyword")
		}
	}
	return nil
}
