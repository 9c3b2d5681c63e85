package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StoreDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default postgres", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreDriver != StoreDriverPostgres {
			t.Fatalf("unexpected default store driver: %q", cfg.StoreDriver)
		}
	})

	t.Run("memory accepted", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreDriver != StoreDriverMemory {
			t.Fatalf("unexpected store driver: %q", cfg.StoreDriver)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "redis")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid STORE_DRIVER")
		}
	})
}

func TestLoad_ReminderWindowValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ReminderScanInterval != time.Minute {
			t.Fatalf("unexpected default scan interval: %s", cfg.ReminderScanInterval)
		}
		if cfg.ReminderWindowMin != 4*time.Minute || cfg.ReminderWindowMax != 6*time.Minute {
			t.Fatalf("unexpected default window: %s..%s", cfg.ReminderWindowMin, cfg.ReminderWindowMax)
		}
	})

	t.Run("max must exceed min", func(t *testing.T) {
		t.Setenv("REMINDER_WINDOW_MIN", "6m")
		t.Setenv("REMINDER_WINDOW_MAX", "4m")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when REMINDER_WINDOW_MAX <= REMINDER_WINDOW_MIN")
		}
	})

	t.Run("window narrower than scan interval", func(t *testing.T) {
		t.Setenv("REMINDER_SCAN_INTERVAL", "5m")
		t.Setenv("REMINDER_WINDOW_MIN", "4m")
		t.Setenv("REMINDER_WINDOW_MAX", "6m")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when window is narrower than the scan interval")
		}
	})
}

func TestLoad_KeepaliveRequiresURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("KEEPALIVE_ENABLED", "true")
	t.Setenv("KEEPALIVE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when KEEPALIVE_ENABLED=true without KEEPALIVE_URL")
	}
}

func TestLoad_ProdRequiresAdminToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ADMIN_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without ADMIN_TOKEN")
	}

	t.Setenv("ADMIN_TOKEN", "secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AdminToken != "secret" {
		t.Fatalf("unexpected admin token: %q", cfg.AdminToken)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
	})
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Setenv("APP_LOG_LEVEL", "warn")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}

	t.Setenv("APP_LOG_LEVEL", "nonsense")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "info" {
		t.Fatalf("unknown level should fall back to info, got %s", cfg.LogLevel)
	}
}
