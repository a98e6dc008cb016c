package config

import (
	"time"
)

// Default configuration values.
const (
	defaultServiceName = "instafetch"
	defaultServicePort = 8094
	defaultVersion     = "0.1.0"

	defaultUpstreamBaseURL   = "https://www.instagram.com"
	defaultUpstreamTimeout   = 20 * time.Second
	defaultMaxConcurrent     = 16
	defaultUpstreamRPS       = 5
	defaultRetryAttempts     = 3
	defaultRetryDelay        = 500 * time.Millisecond
	defaultUserAgent         = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	defaultCacheBackend = "memory"
	defaultCacheTTL     = 5 * time.Minute
	defaultRedisAddr    = "localhost:6379"

	defaultRateLimitMax    = 6
	defaultRateLimitWindow = 10 * time.Second
	defaultRateLimitGC     = time.Minute

	defaultSMTPPort = 587

	defaultLoggingLevel = "info"
)

// defaultAllowedHosts is the upstream CDN/API host suffix allow-list.
var defaultAllowedHosts = []string{"cdninstagram.com", "fbcdn.net", "instagram.com"}

// Config holds the application configuration.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Upstream  UpstreamConfig  `yaml:"upstream"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"INSTAFETCH_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"       yaml:"debug"`
}

// UpstreamConfig holds settings for the Instagram metadata and CDN fetches.
type UpstreamConfig struct {
	BaseURL           string        `env:"INSTAFETCH_UPSTREAM_URL" yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	MaxConcurrent     int           `yaml:"max_concurrent"`
	RequestsPerSecond int           `yaml:"requests_per_second"`
	RetryAttempts     int           `yaml:"retry_attempts"`
	RetryDelay        time.Duration `yaml:"retry_delay"`
	UserAgent         string        `yaml:"user_agent"`
	AllowedHosts      []string      `env:"INSTAFETCH_ALLOWED_HOSTS" yaml:"allowed_hosts"`
}

// CacheConfig holds resolution cache configuration. Backend selects the
// in-memory store (default) or Redis for multi-instance deployments.
type CacheConfig struct {
	Backend       string        `env:"INSTAFETCH_CACHE_BACKEND" yaml:"backend"`
	TTL           time.Duration `yaml:"ttl"`
	RedisAddr     string        `env:"REDIS_ADDR"     yaml:"redis_addr"`
	RedisPassword string        `env:"REDIS_PASSWORD" yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
}

// RateLimitConfig holds per-client resolution rate limiting configuration.
type RateLimitConfig struct {
	MaxRequests int           `yaml:"max_requests"`
	Window      time.Duration `yaml:"window"`
	GCInterval  time.Duration `yaml:"gc_interval"`
}

// SMTPConfig holds outbound mail configuration for the contact form.
// Mail is disabled when Host is empty.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST" yaml:"host"`
	Port     int    `env:"SMTP_PORT" yaml:"port"`
	User     string `env:"SMTP_USER" yaml:"user"`
	Password string `env:"SMTP_PASS" yaml:"password"`
	From     string `env:"SMTP_FROM" yaml:"from"`
	To       string `env:"SMTP_TO"   yaml:"to"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL" yaml:"level"`
}

// Load loads configuration from the specified path, applies defaults, then
// re-applies environment overrides so env always wins.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setUpstreamDefaults(&cfg.Upstream)
	setCacheDefaults(&cfg.Cache)
	setRateLimitDefaults(&cfg.RateLimit)
	setSMTPDefaults(&cfg.SMTP)
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLoggingLevel
	}
}

func setServiceDefaults(svc *ServiceConfig) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Version == "" {
		svc.Version = defaultVersion
	}
	if svc.Port == 0 {
		svc.Port = defaultServicePort
	}
}

func setUpstreamDefaults(up *UpstreamConfig) {
	if up.BaseURL == "" {
		up.BaseURL = defaultUpstreamBaseURL
	}
	if up.Timeout == 0 {
		up.Timeout = defaultUpstreamTimeout
	}
	if up.MaxConcurrent == 0 {
		up.MaxConcurrent = defaultMaxConcurrent
	}
	if up.RequestsPerSecond == 0 {
		up.RequestsPerSecond = defaultUpstreamRPS
	}
	if up.RetryAttempts == 0 {
		up.RetryAttempts = defaultRetryAttempts
	}
	if up.RetryDelay == 0 {
		up.RetryDelay = defaultRetryDelay
	}
	if up.UserAgent == "" {
		up.UserAgent = defaultUserAgent
	}
	if len(up.AllowedHosts) == 0 {
		up.AllowedHosts = defaultAllowedHosts
	}
}

func setCacheDefaults(c *CacheConfig) {
	if c.Backend == "" {
		c.Backend = defaultCacheBackend
	}
	if c.TTL == 0 {
		c.TTL = defaultCacheTTL
	}
	if c.RedisAddr == "" {
		c.RedisAddr = defaultRedisAddr
	}
}

func setRateLimitDefaults(rl *RateLimitConfig) {
	if rl.MaxRequests == 0 {
		rl.MaxRequests = defaultRateLimitMax
	}
	if rl.Window == 0 {
		rl.Window = defaultRateLimitWindow
	}
	if rl.GCInterval == 0 {
		rl.GCInterval = defaultRateLimitGC
	}
}

func setSMTPDefaults(s *SMTPConfig) {
	if s.Port == 0 {
		s.Port = defaultSMTPPort
	}
	if s.From == "" {
		s.From = s.User
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validatePort("service.port", c.Service.Port); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "memory", "redis":
	default:
		return &ValidationError{
			Field:   "cache.backend",
			Message: "must be one of: memory, redis",
		}
	}
	if len(c.Upstream.AllowedHosts) == 0 {
		return &ValidationError{
			Field:   "upstream.allowed_hosts",
			Message: "is required",
		}
	}
	return nil
}
