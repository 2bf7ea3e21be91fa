package config

import (
	"os"
	"testing"
	"time"
)

// unsetEnv removes key from the environment for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	original, ok := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, original)
		}
	})
}

func TestNewServerConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "HOST", "ENVIRONMENT", "LOG_LEVEL", "PUBLIC_DIR", "ALLOWED_ORIGINS", "MAX_REQUEST_BODY_SIZE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "REQUEST_TIMEOUT"} {
		unsetEnv(t, key)
	}

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port: got %d, want 3000", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment: got %q, want development", cfg.Environment)
	}
	if cfg.PublicDir != "public" {
		t.Errorf("PublicDir: got %q, want public", cfg.PublicDir)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins: got %v, want [*]", cfg.AllowedOrigins)
	}
	if cfg.MaxRequestBodySize != 102400 {
		t.Errorf("MaxRequestBodySize: got %d, want 102400", cfg.MaxRequestBodySize)
	}
	if cfg.RateLimitRPS != 0 {
		t.Errorf("RateLimitRPS: got %d, want 0 (disabled)", cfg.RateLimitRPS)
	}
	if cfg.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout: got %v, want 60s", cfg.RequestTimeout)
	}
}

func TestNewServerConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com|https://b.example.com")

	cfg, err := NewServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8081 {
		t.Errorf("Port: got %d, want 8081", cfg.Port)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment: got %q, want production", cfg.Environment)
	}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction to be true")
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins: got %v, want 2 entries", cfg.AllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	valid := func() ServerEnvironment {
		return ServerEnvironment{
			Environment:           "development",
			Port:                  3000,
			LogLevel:              "info",
			MaxRequestBodySize:    1024,
			RateLimitBurst:        10,
			RequestTimeout:        time.Second,
			ServerShutdownTimeout: time.Second,
		}
	}

	tests := []struct {
		name    string
		modify  func(cfg *ServerEnvironment)
		wantErr bool
	}{
		{"valid", func(cfg *ServerEnvironment) {}, false},
		{"any environment name", func(cfg *ServerEnvironment) { cfg.Environment = "qa-eu" }, false},
		{"port zero", func(cfg *ServerEnvironment) { cfg.Port = 0 }, true},
		{"port too large", func(cfg *ServerEnvironment) { cfg.Port = 70000 }, true},
		{"empty environment", func(cfg *ServerEnvironment) { cfg.Environment = " " }, true},
		{"unknown log level", func(cfg *ServerEnvironment) { cfg.LogLevel = "verbose" }, true},
		{"zero body size", func(cfg *ServerEnvironment) { cfg.MaxRequestBodySize = 0 }, true},
		{"zero request timeout", func(cfg *ServerEnvironment) { cfg.RequestTimeout = 0 }, true},
		{"zero shutdown timeout", func(cfg *ServerEnvironment) { cfg.ServerShutdownTimeout = 0 }, true},
		{"negative burst", func(cfg *ServerEnvironment) { cfg.RateLimitBurst = -1 }, true},
		{"rate limit without burst", func(cfg *ServerEnvironment) { cfg.RateLimitRPS = 5; cfg.RateLimitBurst = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
