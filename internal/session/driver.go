package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/halfmoor/wlprobe/internal/catalog"
	"github.com/halfmoor/wlprobe/internal/objects"
	"github.com/halfmoor/wlprobe/internal/observability"
	"github.com/halfmoor/wlprobe/internal/protocol"
)

var ErrNilStream = errors.New("session: nil stream")

// Session drives one probe against a display connection: handshake,
// bounded read loop, catalog accumulation.
type Session struct {
	stream io.ReadWriter
	reader *bufio.Reader
	cfg    Config

	objects  *objects.Table
	catalog  *catalog.Catalog
	dispatch *Dispatcher

	callbackID uint32
	registryID uint32
}

func New(stream io.ReadWriter, cfg Config) (*Session, error) {
	if stream == nil {
		return nil, ErrNilStream
	}
	cfg = cfg.WithDefaults()
	tbl := objects.NewTable()
	cat := catalog.New()
	return &Session{
		stream:   stream,
		reader:   bufio.NewReader(stream),
		cfg:      cfg,
		objects:  tbl,
		catalog:  cat,
		dispatch: NewDispatcher(tbl, cat),
	}, nil
}

// Objects returns the live object table for this session.
func (s *Session) Objects() *objects.Table { return s.objects }

// Catalog returns the globals accumulated so far.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Dispatcher exposes the event hooks for this session.
func (s *Session) Dispatcher() *Dispatcher { return s.dispatch }

// CallbackID returns the id bound by sync, zero before Handshake.
func (s *Session) CallbackID() uint32 { return s.callbackID }

// RegistryID returns the id bound by get_registry, zero before Handshake.
func (s *Session) RegistryID() uint32 { return s.registryID }

// Handshake issues the wl_display.sync and wl_display.get_registry
// bootstrap requests. Each id is registered only after its write
// succeeds, so a transport failure leaves the object table unchanged.
func (s *Session) Handshake() error {
	callbackID := s.objects.Allocate()
	if err := s.writeRequest(protocol.EncodeSync(callbackID), "sync"); err != nil {
		return fmt.Errorf("session: sync: %w", err)
	}
	s.objects.Register(callbackID, objects.Callback)
	s.callbackID = callbackID

	registryID := s.objects.Allocate()
	if err := s.writeRequest(protocol.EncodeGetRegistry(registryID), "get_registry"); err != nil {
		return fmt.Errorf("session: get_registry: %w", err)
	}
	s.objects.Register(registryID, objects.Registry)
	s.registryID = registryID

	log.Debug().
		Uint32("callback_id", callbackID).
		Uint32("registry_id", registryID).
		Msg("session: handshake sent")
	return nil
}

func (s *Session) writeRequest(msg []byte, name string) error {
	if _, err := s.stream.Write(msg); err != nil {
		return err
	}
	observability.RecordRequest(name)
	return nil
}

// ProcessMessage reads and dispatches one server message. It returns
// false when the server closed the stream cleanly at a message
// boundary. Header or body truncation and transport faults are fatal.
func (s *Session) ProcessMessage() (bool, error) {
	h, err := protocol.ReadHeader(s.reader)
	if err != nil {
		if errors.Is(err, protocol.ErrEndOfStream) {
			log.Debug().Msg("session: server closed stream")
			return false, nil
		}
		return false, fmt.Errorf("session: read header: %w", err)
	}

	body, err := protocol.ReadBody(s.reader, h)
	if err != nil {
		return false, fmt.Errorf("session: read body: %w", err)
	}
	observability.RecordReadBytes(int(h.Size))

	outcome := s.dispatch.Dispatch(h, body)
	observability.RecordMessage(outcome.String())
	return true, nil
}

// Run processes server messages until the configured budget is spent or
// the server closes the stream. Reads block; a server that stalls
// mid-stream holds Run until the transport reports an error.
func (s *Session) Run() error {
	for i := 0; i < s.cfg.MaxMessages; i++ {
		more, err := s.ProcessMessage()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	log.Debug().
		Int("max_messages", s.cfg.MaxMessages).
		Msg("session: message budget exhausted")
	return nil
}
