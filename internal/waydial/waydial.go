// Package waydial locates and connects to the display socket.
package waydial

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"time"
)

const (
	EnvDisplay    = "WAYLAND_DISPLAY"
	EnvRuntimeDir = "XDG_RUNTIME_DIR"

	DefaultDisplayName = "wayland-0"
)

var ErrNoRuntimeDir = errors.New("waydial: XDG_RUNTIME_DIR not set")

// SocketPath resolves the display socket path. displayOverride, when
// non-empty, takes precedence over $WAYLAND_DISPLAY; with neither set
// the name falls back to DefaultDisplayName. An absolute display name
// is used verbatim and needs no runtime directory.
func SocketPath(displayOverride string) (string, error) {
	display := displayOverride
	if display == "" {
		display = os.Getenv(EnvDisplay)
	}
	if display == "" {
		display = DefaultDisplayName
	}
	if filepath.IsAbs(display) {
		return display, nil
	}
	runtimeDir := os.Getenv(EnvRuntimeDir)
	if runtimeDir == "" {
		return "", ErrNoRuntimeDir
	}
	return filepath.Join(runtimeDir, display), nil
}

// Dial connects to the unix stream socket at path.
func Dial(ctx context.Context, path string, timeout time.Duration) (net.Conn, error) {
	dialer := net.Dialer{Timeout: timeout}
	return dialer.DialContext(ctx, "unix", path)
}
