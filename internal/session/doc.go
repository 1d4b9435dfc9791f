// Package session owns the display handshake and the bounded read loop.
//
// Ownership boundary:
// - bootstrap requests (wl_display.sync, wl_display.get_registry)
// - per-message read/dispatch cycle and its outcome taxonomy
// - transport error classification (clean close vs truncation)
// - registry global accumulation into the interface catalog
package session
