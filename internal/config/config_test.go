package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "newsdesk" {
		t.Errorf("dbname = %q, want newsdesk", cfg.Database.DBName)
	}
	if cfg.JWT.AccessTokenExpiration != "24h" {
		t.Errorf("token expiration = %q, want 24h", cfg.JWT.AccessTokenExpiration)
	}
	if cfg.Upload.MaxImageSize != 5*1024*1024 {
		t.Errorf("max image size = %d, want 5MB", cfg.Upload.MaxImageSize)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
  mode: release
jwt:
  secret: test-secret
  access_token_expiration: 12h
upload:
  max_image_size: 1048576
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Server.Mode != "release" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.JWT.AccessTokenExpiration != "12h" {
		t.Errorf("token expiration = %q, want 12h", cfg.JWT.AccessTokenExpiration)
	}
	if cfg.Upload.MaxImageSize != 1048576 {
		t.Errorf("max image size = %d, want 1048576", cfg.Upload.MaxImageSize)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: file-secret
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, env must win over file", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("secret = %q, env must win over file", cfg.JWT.Secret)
	}
	if cfg.Database.MaxOpenConns != 42 {
		t.Errorf("max open conns = %d, want 42", cfg.Database.MaxOpenConns)
	}
}

func TestLoadConfig_MissingSecretRejected(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: \"9090\"\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for missing jwt secret")
	}
}

func TestLoadConfig_BadExpirationRejected(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\n  access_token_expiration: soon\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unparseable token expiration")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Database.User = "news"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "newsdesk"
	cfg.Database.SSLMode = ""

	got := cfg.GetPostgresConnectionString()
	want := "postgres://news:pw@db.internal:5433/newsdesk?sslmode=disable"
	if got != want {
		t.Errorf("dsn = %q, want %q", got, want)
	}
}
