package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/halfmoor/wlprobe/internal/session"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadProbeConfigOverrides(t *testing.T) {
	path := writeConfigFile(t, `
socket = "/run/user/1000/wayland-1"
display = "wayland-1"
max_messages = 64
connect_timeout = "750ms"
`)

	cfg, err := loadProbeConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Socket != "/run/user/1000/wayland-1" {
		t.Fatalf("unexpected socket: %q", cfg.Socket)
	}
	if cfg.Display != "wayland-1" {
		t.Fatalf("unexpected display: %q", cfg.Display)
	}
	if cfg.MaxMessages != 64 {
		t.Fatalf("unexpected max messages: %d", cfg.MaxMessages)
	}
	if cfg.ConnectTimeout != 750*time.Millisecond {
		t.Fatalf("unexpected connect timeout: %v", cfg.ConnectTimeout)
	}
}

func TestLoadProbeConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
display = "wayland-7"
`)

	cfg, err := loadProbeConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Display != "wayland-7" {
		t.Fatalf("unexpected display: %q", cfg.Display)
	}
	if cfg.Socket != "" {
		t.Fatalf("unexpected socket: %q", cfg.Socket)
	}
	if cfg.MaxMessages != session.DefaultMaxMessages {
		t.Fatalf("unexpected max messages: %d", cfg.MaxMessages)
	}
	if cfg.ConnectTimeout != 5*time.Second {
		t.Fatalf("unexpected connect timeout: %v", cfg.ConnectTimeout)
	}
}

func TestLoadProbeConfigBadDuration(t *testing.T) {
	path := writeConfigFile(t, `
connect_timeout = "abc"
`)

	if _, err := loadProbeConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadProbeConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	if _, err := loadProbeConfig(path); err == nil {
		t.Fatalf("expected load error")
	}
}
