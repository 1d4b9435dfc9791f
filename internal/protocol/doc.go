// Package protocol owns the Wayland wire contract and parsing primitives.
//
// Ownership boundary:
// - fixed 8-byte header framing
// - request encoding for the wl_display bootstrap
// - body cursor primitives (u32, string, alignment)
package protocol
