package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tessella/tessella/pkg/errors"
)

func TestLoadConfigExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
width = 120
height = 50
density = 2.5
format = "html"
poem_dir = "/tmp/poems"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Width != 120 {
		t.Errorf("Width = %d, want 120", cfg.Width)
	}
	if cfg.Height != 50 {
		t.Errorf("Height = %d, want 50", cfg.Height)
	}
	if cfg.Density != 2.5 {
		t.Errorf("Density = %v, want 2.5", cfg.Density)
	}
	if cfg.Format != "html" {
		t.Errorf("Format = %q, want %q", cfg.Format, "html")
	}
	if cfg.PoemDir != "/tmp/poems" {
		t.Errorf("PoemDir = %q, want %q", cfg.PoemDir, "/tmp/poems")
	}
}

func TestLoadConfigPartial(t *testing.T) {
	// Unset keys keep their defaults.
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("width = 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Width != 100 {
		t.Errorf("Width = %d, want 100", cfg.Width)
	}
	if cfg.Height != 40 {
		t.Errorf("Height = %d, want default 40", cfg.Height)
	}
	if cfg.Format != "txt" {
		t.Errorf("Format = %q, want default %q", cfg.Format, "txt")
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("loadConfig() should fail for a missing explicit path")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("width = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig(path)
	if err == nil {
		t.Fatal("loadConfig() should fail for malformed TOML")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestConfigContextRoundTrip(t *testing.T) {
	cfg := Config{Width: 33, Height: 11, Density: 0.5, Format: "html"}
	ctx := withConfig(context.Background(), cfg)

	got := configFromContext(ctx)
	if got != cfg {
		t.Errorf("configFromContext() = %+v, want %+v", got, cfg)
	}
}

func TestConfigFromContextDefault(t *testing.T) {
	got := configFromContext(context.Background())
	want := defaultConfig()
	if got != want {
		t.Errorf("configFromContext() = %+v, want defaults %+v", got, want)
	}
}
