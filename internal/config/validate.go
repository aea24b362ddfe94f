package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Quota.validate(); err != nil {
		return fmt.Errorf("quota: %w", err)
	}

	if c.LLM.MaxAttempts < 1 {
		return fmt.Errorf("llm.max_attempts must be >= 1 (got %d)", c.LLM.MaxAttempts)
	}
	if c.LLM.RetryBackoff <= 0 {
		return fmt.Errorf("llm.retry_backoff must be > 0 (got %s)", c.LLM.RetryBackoff)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0 (got %d)", c.LLM.MaxTokens)
	}

	if c.Storage.ThumbWidth <= 0 || c.Storage.ThumbHeight <= 0 {
		return fmt.Errorf("storage thumbnail dimensions must be > 0 (got %dx%d)", c.Storage.ThumbWidth, c.Storage.ThumbHeight)
	}
	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (q *QuotaConfig) validate() error {
	if q.WeeklyTextCredits < 0 {
		return fmt.Errorf("weekly_text_credits must be >= 0 (got %d)", q.WeeklyTextCredits)
	}
	if q.LifetimeImageCredits < 0 {
		return fmt.Errorf("lifetime_image_credits must be >= 0 (got %d)", q.LifetimeImageCredits)
	}
	if q.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", q.MaxRetries)
	}
	if q.RetryBackoff <= 0 {
		return fmt.Errorf("retry_backoff must be > 0 (got %s)", q.RetryBackoff)
	}

	wd, err := ParseWeekday(q.ResetWeekdayRaw)
	if err != nil {
		return fmt.Errorf("reset_weekday: %w", err)
	}
	q.ResetWeekday = wd

	loc, err := time.LoadLocation(q.ResetTimezone)
	if err != nil {
		return fmt.Errorf("reset_timezone %q: %w", q.ResetTimezone, err)
	}
	q.ResetLocation = loc

	return nil
}

// ParseWeekday parses an English weekday name ("sunday", "Mon") into a
// time.Weekday. Matching is case-insensitive and accepts 3-letter prefixes.
func ParseWeekday(raw string) (time.Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if len(s) < 3 {
		return 0, fmt.Errorf("invalid weekday %q", raw)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", raw)
}
