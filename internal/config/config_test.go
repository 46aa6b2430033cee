package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"arunoday-portal/internal/adapters/persistence/repositories"
	"arunoday-portal/internal/pkg/password"

	"golang.org/x/crypto/bcrypt"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_MODE", "PORT", "DB_DRIVER", "MONGO_URL", "DB_NAME", "JWT_SECRET",
		"JWT_EXPIRATION_HOURS", "CORS_ORIGINS", "ADMIN_EMAIL", "ADMIN_PASSWORD", "LOGIN_RATE_LIMIT",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("DB_DRIVER", DriverMemory)
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Port != "8001" {
		t.Fatalf("expected default port 8001, got %s", cfg.Port)
	}
	if cfg.TokenExpiry() != 24*time.Hour {
		t.Fatalf("expected 24h token expiry, got %s", cfg.TokenExpiry())
	}
	if cfg.Admin.Email != "admin@arunodayvidyalay.com" || cfg.Admin.Password != "admin123" {
		t.Fatalf("unexpected admin defaults: %+v", cfg.Admin)
	}
	if cfg.GetAllowedOrigins() != "*" {
		t.Fatalf("expected wildcard origins, got %s", cfg.GetAllowedOrigins())
	}
	if !cfg.IsDev() {
		t.Fatalf("expected dev mode by default")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"app mode", map[string]string{"APP_MODE": "staging"}, "APP_MODE"},
		{"driver", map[string]string{"DB_DRIVER": "postgres"}, "DB_DRIVER"},
		{"mongo url", map[string]string{"DB_DRIVER": "mongo", "DB_NAME": "school"}, "MONGO_URL"},
		{"mongo db name", map[string]string{"DB_DRIVER": "mongo", "MONGO_URL": "mongodb://localhost"}, "DB_NAME"},
		{"expiry", map[string]string{"JWT_EXPIRATION_HOURS": "soon"}, "JWT_EXPIRATION_HOURS"},
		{"rate limit", map[string]string{"LOGIN_RATE_LIMIT": "many"}, "LOGIN_RATE_LIMIT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %s, got %v", tc.want, err)
			}
		})
	}
}

func TestAllowedOriginsTrimmed(t *testing.T) {
	cfg := &Config{CORSOrigins: " https://a.example , ,https://b.example "}
	if got := cfg.GetAllowedOrigins(); got != "https://a.example,https://b.example" {
		t.Fatalf("unexpected origins: %s", got)
	}
}

func TestSeederIsIdempotent(t *testing.T) {
	password.Cost = bcrypt.MinCost
	t.Cleanup(func() { password.Cost = password.DefaultCost })

	store := repositories.NewMemoryStore()
	seeder := NewSeeder(store.Admins, AdminConfig{Email: "admin@school.com", Password: "secret"})
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	first, err := store.Admins.GetByEmail(ctx, "admin@school.com")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if !password.Verify("secret", first.PasswordHash) {
		t.Fatalf("seeded admin password does not verify")
	}

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("second run error: %v", err)
	}
	second, err := store.Admins.GetByEmail(ctx, "admin@school.com")
	if err != nil {
		t.Fatalf("admin missing after second run: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("seeder replaced the existing admin")
	}
}

func TestConnectStoreMemory(t *testing.T) {
	store, err := ConnectStore(context.Background(), &Config{Database: DatabaseConfig{Driver: DriverMemory}})
	if err != nil {
		t.Fatalf("connect error: %v", err)
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("ping error: %v", err)
	}
}
