package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Env:      "local",
		Http:     HttpConfig{Port: ":8080"},
		Postgres: PostgresConfig{Host: "pg-local"},
		Reports:  ReportsConfig{ExpireAfter: 4 * time.Hour},
		Alerts:   AlertsConfig{WorkerPoolSize: 4},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_BadPort(t *testing.T) {
	for _, port := range []string{"", "8080", "localhost:8080"} {
		cfg := validConfig()
		cfg.Http.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %q: expected error", port)
		}
	}
}

func TestValidate_MissingPostgresHost(t *testing.T) {
	cfg := validConfig()
	cfg.Postgres.Host = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate_NonPositiveExpireAfter(t *testing.T) {
	cfg := validConfig()
	cfg.Reports.ExpireAfter = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate_ZeroWorkerPool(t *testing.T) {
	cfg := validConfig()
	cfg.Alerts.WorkerPoolSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CFG_TEST_STR", "value")
	t.Setenv("CFG_TEST_INT", "42")
	t.Setenv("CFG_TEST_DUR", "90s")
	t.Setenv("CFG_TEST_FLOAT", "2.5")
	t.Setenv("CFG_TEST_BOOL", "true")
	t.Setenv("CFG_TEST_BAD_INT", "nope")

	if got := getEnv("CFG_TEST_STR", "def"); got != "value" {
		t.Errorf("getEnv = %q", got)
	}
	if got := getEnv("CFG_TEST_UNSET", "def"); got != "def" {
		t.Errorf("getEnv default = %q", got)
	}
	if got := getEnvInt("CFG_TEST_INT", 1); got != 42 {
		t.Errorf("getEnvInt = %d", got)
	}
	if got := getEnvInt("CFG_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("getEnvInt bad value = %d, want default", got)
	}
	if got := getEnvDuration("CFG_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("getEnvDuration = %v", got)
	}
	if got := getEnvFloat("CFG_TEST_FLOAT", 1); got != 2.5 {
		t.Errorf("getEnvFloat = %v", got)
	}
	if got := getEnvBool("CFG_TEST_BOOL", false); !got {
		t.Errorf("getEnvBool = %v", got)
	}
}
