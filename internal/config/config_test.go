package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadWithDefaults_Succeeds(t *testing.T) {
	// Ensure envs are clean to use defaults
	os.Unsetenv("HTTP_ADDRESS")
	os.Unsetenv("DATA_DIR")
	os.Unsetenv("SESSION_SECRET")
	os.Unsetenv("SESSION_TTL")
	cfg, err := LoadWithDefaults()
	if err != nil {
		t.Fatalf("LoadWithDefaults: %v", err)
	}
	if cfg.HTTP.Address == "" || cfg.Store.DataDir == "" || cfg.Session.Secret == "" {
		t.Fatalf("unexpected empty defaults: %+v", cfg)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Fatalf("unexpected default TTL: %s", cfg.Session.TTL)
	}
}

func TestLoad_RequiresSessionSecret(t *testing.T) {
	os.Unsetenv("SESSION_SECRET")
	t.Setenv("HTTP_ADDRESS", ":1234")
	t.Setenv("DATA_DIR", "testdata-dir")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SESSION_SECRET is not set")
	}
	// When set, it should succeed
	t.Setenv("SESSION_SECRET", "x")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with secret set: %v", err)
	}
	if cfg.HTTP.Address != ":1234" || cfg.Store.DataDir != "testdata-dir" {
		t.Fatalf("env values not picked up: %+v", cfg)
	}
}

func TestLoad_RejectsInvalidTTL(t *testing.T) {
	t.Setenv("SESSION_SECRET", "x")
	t.Setenv("SESSION_TTL", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid SESSION_TTL")
	}
}

func TestLoad_SplitsCORSOrigins(t *testing.T) {
	t.Setenv("SESSION_SECRET", "x")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example ,")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.HTTP.CORSOrigins) != 2 || cfg.HTTP.CORSOrigins[1] != "http://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.HTTP.CORSOrigins)
	}
}

func TestString_MasksSecret(t *testing.T) {
	cfg := &Config{Session: SessionConfig{Secret: "super-secret"}}
	if s := cfg.String(); strings.Contains(s, "super-secret") {
		t.Fatalf("secret leaked in String(): %s", s)
	}
}
