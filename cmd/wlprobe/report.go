package main

import (
	"fmt"
	"io"

	"github.com/halfmoor/wlprobe/internal/catalog"
)

// writeReport prints the discovered globals in registry-name order.
func writeReport(w io.Writer, entries []catalog.Entry) error {
	if _, err := fmt.Fprint(w, "\nWayland Server Info:\n--------------------\nAvailable interfaces:\n"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "  %s (name: %d, version: %d)\n", e.Interface, e.Name, e.Version); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal interfaces: %d\n", len(entries))
	return err
}
