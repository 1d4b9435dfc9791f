// Package displaytest provides a scripted display server for driving
// sessions over real connections in tests.
package displaytest

import (
	"encoding/binary"
	"net"
	"path/filepath"
	"sync"
	"testing"

	"github.com/halfmoor/wlprobe/internal/protocol"
)

// Global is one scripted registry announcement.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

// Script is the canned reply a server plays once both bootstrap
// requests have arrived.
type Script struct {
	Globals []Global
	// OmitDone suppresses the callback done event.
	OmitDone bool
	// TrailingRaw is written verbatim after the scripted events, for
	// staging truncated or unknown traffic.
	TrailingRaw []byte
}

// Start listens on a fresh unix socket, serves exactly one connection
// with the scripted burst, and cleans up with the test. It returns the
// socket path to dial.
func Start(t *testing.T, script Script) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "display.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("displaytest: listen: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		serve(conn, script)
	}()

	t.Cleanup(func() {
		_ = ln.Close()
		wg.Wait()
	})
	return path
}

// serve replays the script on one accepted connection. Playback is
// best effort; assertions belong on the client side of the test.
func serve(conn net.Conn, script Script) {
	callbackID, ok := readBootstrap(conn, protocol.DisplaySyncOpcode)
	if !ok {
		return
	}
	registryID, ok := readBootstrap(conn, protocol.DisplayGetRegistryOpcode)
	if !ok {
		return
	}

	for _, g := range script.Globals {
		if _, err := conn.Write(globalEvent(registryID, g)); err != nil {
			return
		}
	}
	if !script.OmitDone {
		if _, err := conn.Write(doneEvent(callbackID, 1)); err != nil {
			return
		}
	}
	if len(script.TrailingRaw) > 0 {
		_, _ = conn.Write(script.TrailingRaw)
	}
}

func readBootstrap(conn net.Conn, opcode uint16) (uint32, bool) {
	h, err := protocol.ReadHeader(conn)
	if err != nil || h.ObjectID != protocol.DisplayObjectID || h.Opcode != opcode {
		return 0, false
	}
	body, err := protocol.ReadBody(conn, h)
	if err != nil || len(body) != 4 {
		return 0, false
	}
	return binary.NativeEndian.Uint32(body), true
}

func globalEvent(registryID uint32, g Global) []byte {
	body := binary.NativeEndian.AppendUint32(nil, g.Name)
	body = appendString(body, g.Interface)
	body = binary.NativeEndian.AppendUint32(body, g.Version)
	return Event(registryID, protocol.RegistryGlobalOpcode, body)
}

func doneEvent(callbackID, serial uint32) []byte {
	return Event(callbackID, protocol.CallbackDoneOpcode, binary.NativeEndian.AppendUint32(nil, serial))
}

// Event builds one complete wire message addressed to objectID.
func Event(objectID uint32, opcode uint16, body []byte) []byte {
	h := protocol.Header{
		ObjectID: objectID,
		Size:     uint16(protocol.HeaderSize + len(body)),
		Opcode:   opcode,
	}
	return append(protocol.EncodeHeader(h), body...)
}

func appendString(buf []byte, s string) []byte {
	buf = binary.NativeEndian.AppendUint32(buf, uint32(len(s)+1))
	buf = append(buf, s...)
	buf = append(buf, 0)
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	return buf
}
