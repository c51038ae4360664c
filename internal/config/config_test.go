package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/CermP/anki-companion/internal/infra/ankiconnect"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AnkiURL != ankiconnect.DefaultURL {
		t.Errorf("url: got %q", cfg.AnkiURL)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("timeout: got %v", cfg.Timeout())
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "anki_url = \"http://127.0.0.1:9999\"\ntimeout_seconds = 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AnkiURL != "http://127.0.0.1:9999" {
		t.Errorf("url: got %q", cfg.AnkiURL)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("timeout: got %v", cfg.Timeout())
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("timeout_seconds = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AnkiURL != ankiconnect.DefaultURL {
		t.Errorf("url should default: got %q", cfg.AnkiURL)
	}
	if cfg.Timeout() != 0 {
		t.Errorf("explicit zero timeout should stand: got %v", cfg.Timeout())
	}
}

func TestLoadExplicitMissingPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for explicit missing file")
	}
}

func TestLoadInvalidFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("anki_url = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "anki-companion")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("anki_url = \"http://localhost:8765\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AnkiURL != "http://localhost:8765" {
		t.Errorf("url: got %q", cfg.AnkiURL)
	}
}
