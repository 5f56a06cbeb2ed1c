package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", c.Server.Port)
	}
	if c.Finance.BailoutHandler != "treasurer" {
		t.Errorf("bailout handler = %q", c.Finance.BailoutHandler)
	}
	limit, err := c.Finance.Cap()
	if err != nil || limit.String() != "100" {
		t.Errorf("cap = %s, %v", limit, err)
	}
	if c.Auth.Enabled() {
		t.Error("auth should be disabled without a secret")
	}
	if c.Log.Level != "" {
		t.Errorf("log level = %q, want empty so LOG_LEVEL applies", c.Log.Level)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.yaml")
	yaml := `
server:
  port: 9090
database:
  path: /tmp/club.db
finance:
  dining_cap: "80.50"
auth:
  jwt_secret: s3cret
  token_hours: 12
  operators:
    lee: "$2a$10$abcdefghijklmnopqrstuv"
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CLUB_LOG_LEVEL", "debug")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Server.Addr() != ":9090" {
		t.Errorf("addr = %q", c.Server.Addr())
	}
	if c.Database.Path != "/tmp/club.db" {
		t.Errorf("db path = %q", c.Database.Path)
	}
	if c.Log.Level != "debug" {
		t.Errorf("log level = %q, want env override", c.Log.Level)
	}
	limit, _ := c.Finance.Cap()
	if limit.String() != "80.5" {
		t.Errorf("cap = %s, want 80.5", limit)
	}
	if !c.Auth.Enabled() || c.Auth.TokenDuration() != 12*time.Hour {
		t.Errorf("auth = %+v", c.Auth)
	}
	if _, ok := c.Auth.Operators["lee"]; !ok {
		t.Errorf("operators = %v", c.Auth.Operators)
	}
}

func TestLoadRejectsBadCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.yaml")
	if err := os.WriteFile(path, []byte("finance:\n  dining_cap: \"-5\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for negative dining cap")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
