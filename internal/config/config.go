package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Quota     QuotaConfig     `yaml:"quota"`
	LLM       LLMConfig       `yaml:"llm"`
	Image     ImageConfig     `yaml:"image"`
	Storage   StorageConfig   `yaml:"storage"`
	Redis     RedisConfig     `yaml:"redis"`
	Regen     RegenConfig     `yaml:"regen"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"180s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"65536"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by the
// external identity service; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"dreamr"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits for the API.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// QuotaConfig holds free-tier credit settings.
type QuotaConfig struct {
	WeeklyTextCredits    int           `yaml:"weekly_text_credits"    env:"QUOTA_WEEKLY_TEXT_CREDITS"    env-default:"3"`
	LifetimeImageCredits int           `yaml:"lifetime_image_credits" env:"QUOTA_LIFETIME_IMAGE_CREDITS" env-default:"3"`
	ResetWeekdayRaw      string        `yaml:"reset_weekday"          env:"QUOTA_RESET_WEEKDAY"          env-default:"sunday"`
	ResetTimezone        string        `yaml:"reset_timezone"         env:"QUOTA_RESET_TIMEZONE"         env-default:"America/Los_Angeles"`
	LockTimeout          time.Duration `yaml:"lock_timeout"           env:"QUOTA_LOCK_TIMEOUT"           env-default:"5s"`
	MaxRetries           int           `yaml:"max_retries"            env:"QUOTA_MAX_RETRIES"            env-default:"3"`
	RetryBackoff         time.Duration `yaml:"retry_backoff"          env:"QUOTA_RETRY_BACKOFF"          env-default:"50ms"`

	// ResetWeekday is parsed from ResetWeekdayRaw during validation.
	ResetWeekday time.Weekday `yaml:"-" env:"-"`
	// ResetLocation is loaded from ResetTimezone during validation.
	ResetLocation *time.Location `yaml:"-" env:"-"`
}

// LLMConfig holds text-generation provider settings.
type LLMConfig struct {
	APIKey       string        `yaml:"api_key"       env:"LLM_API_KEY"`
	BaseURL      string        `yaml:"base_url"      env:"LLM_BASE_URL"`
	Model        string        `yaml:"model"         env:"LLM_MODEL"         env-default:"claude-sonnet-4-5"`
	MaxTokens    int64         `yaml:"max_tokens"    env:"LLM_MAX_TOKENS"    env-default:"2048"`
	Timeout      time.Duration `yaml:"timeout"       env:"LLM_TIMEOUT"       env-default:"60s"`
	MaxAttempts  int           `yaml:"max_attempts"  env:"LLM_MAX_ATTEMPTS"  env-default:"3"`
	RetryBackoff time.Duration `yaml:"retry_backoff" env:"LLM_RETRY_BACKOFF" env-default:"1s"`
}

// ImageConfig holds image-generation provider settings.
type ImageConfig struct {
	BaseURL string        `yaml:"base_url" env:"IMAGE_BASE_URL" env-default:"https://api.openai.com/v1"`
	APIKey  string        `yaml:"api_key"  env:"IMAGE_API_KEY"`
	Model   string        `yaml:"model"    env:"IMAGE_MODEL"    env-default:"gpt-image-1"`
	Size    string        `yaml:"size"     env:"IMAGE_SIZE"     env-default:"1024x1024"`
	Timeout time.Duration `yaml:"timeout"  env:"IMAGE_TIMEOUT"  env-default:"120s"`
}

// StorageConfig holds generated-image file storage settings.
type StorageConfig struct {
	Dir                 string `yaml:"dir"                  env:"STORAGE_DIR"                  env-default:"./data/images"`
	ThumbDir            string `yaml:"thumb_dir"            env:"STORAGE_THUMB_DIR"            env-default:"thumbs"`
	ThumbWidth          int    `yaml:"thumb_width"          env:"STORAGE_THUMB_WIDTH"          env-default:"256"`
	ThumbHeight         int    `yaml:"thumb_height"         env:"STORAGE_THUMB_HEIGHT"         env-default:"256"`
	PublicURL           string `yaml:"public_url"           env:"STORAGE_PUBLIC_URL"           env-default:"/images"`
	QuestionPlaceholder string `yaml:"question_placeholder" env:"STORAGE_QUESTION_PLACEHOLDER" env-default:"placeholders/question.png"`
	DeclinePlaceholder  string `yaml:"decline_placeholder"  env:"STORAGE_DECLINE_PLACEHOLDER"  env-default:"placeholders/decline.png"`
}

// RedisConfig holds the discussion session store settings.
type RedisConfig struct {
	Addr               string        `yaml:"addr"                 env:"REDIS_ADDR"                 env-default:"localhost:6379"`
	Password           string        `yaml:"password"             env:"REDIS_PASSWORD"`
	DB                 int           `yaml:"db"                   env:"REDIS_DB"                   env-default:"0"`
	DiscussionTTL      time.Duration `yaml:"discussion_ttl"       env:"REDIS_DISCUSSION_TTL"       env-default:"24h"`
	DiscussionMaxTurns int           `yaml:"discussion_max_turns" env:"REDIS_DISCUSSION_MAX_TURNS" env-default:"20"`
}

// RegenConfig holds settings for the image backfill job.
type RegenConfig struct {
	Concurrency int `yaml:"concurrency" env:"REGEN_CONCURRENCY" env-default:"2"`
	BatchLimit  int `yaml:"batch_limit" env:"REGEN_BATCH_LIMIT" env-default:"100"`
}
