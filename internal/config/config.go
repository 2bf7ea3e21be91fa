package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults
type ServerEnvironment struct {

	// http server settings
	Environment           string        `env:"ENVIRONMENT,default=development"`
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=3000"`
	LogLevel              string        `env:"LOG_LEVEL,default=info"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT,default=60s"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=10s"`

	// static assets are served from this directory (relative to the working directory)
	PublicDir string `env:"PUBLIC_DIR,default=public"`

	// request handling
	AllowedOrigins     []string `env:"ALLOWED_ORIGINS,default=*,separator=|"`
	MaxRequestBodySize int64    `env:"MAX_REQUEST_BODY_SIZE,default=102400"`
	RateLimitRPS       int32    `env:"RATE_LIMIT_RPS,default=0"`
	RateLimitBurst     int32    `env:"RATE_LIMIT_BURST,default=200"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"none":  true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values are usable by the server.
// Any non-empty ENVIRONMENT is accepted since the value is only echoed back to clients.
func (cfg *ServerEnvironment) Validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if strings.TrimSpace(cfg.Environment) == "" {
		return fmt.Errorf("ENVIRONMENT must not be empty")
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return fmt.Errorf("invalid LOG_LEVEL: %s", cfg.LogLevel)
	}
	if cfg.MaxRequestBodySize < 1 {
		return fmt.Errorf("MAX_REQUEST_BODY_SIZE must be at least 1")
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be greater than 0")
	}
	if cfg.ServerShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be 0 or greater")
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst == 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when RATE_LIMIT_RPS is set")
	}
	return nil
}

// IsProduction reports whether the environment should get production-only hardening (e.g HSTS)
func (cfg *ServerEnvironment) IsProduction() bool {
	switch strings.ToLower(cfg.Environment) {
	case "production", "prod", "staging":
		return true
	}
	return false
}
