package session

import (
	"github.com/rs/zerolog/log"

	"github.com/halfmoor/wlprobe/internal/catalog"
	"github.com/halfmoor/wlprobe/internal/objects"
	"github.com/halfmoor/wlprobe/internal/protocol"
)

// Outcome classifies how one server message was handled.
type Outcome uint8

const (
	OutcomeGlobal Outcome = iota
	OutcomeDone
	OutcomeUnhandled
	OutcomeMalformed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGlobal:
		return "global"
	case OutcomeDone:
		return "done"
	case OutcomeUnhandled:
		return "unhandled"
	case OutcomeMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

type dispatchKey struct {
	tag    objects.Tag
	opcode uint16
}

// Dispatcher routes decoded messages to per-event handlers keyed by the
// receiving object's interface tag and the opcode. Payload anomalies
// are absorbed and classified, never returned as errors; only the
// transport may fail a session.
type Dispatcher struct {
	objects *objects.Table
	catalog *catalog.Catalog

	// OnGlobal, when set, observes every global recorded in the catalog.
	OnGlobal func(catalog.Entry)
	// OnDone, when set, observes every callback completion serial.
	OnDone func(serial uint32)
}

func NewDispatcher(tbl *objects.Table, cat *catalog.Catalog) *Dispatcher {
	return &Dispatcher{objects: tbl, catalog: cat}
}

// Dispatch classifies and handles one message. The caller has already
// drained the declared body from the stream, so unhandled and malformed
// messages cost nothing beyond a log line and framing stays intact.
func (d *Dispatcher) Dispatch(h protocol.Header, body []byte) Outcome {
	tag := d.objects.Lookup(h.ObjectID)
	key := dispatchKey{tag: tag, opcode: h.Opcode}
	switch key {
	case dispatchKey{tag: objects.Registry, opcode: protocol.RegistryGlobalOpcode}:
		return d.handleGlobal(h, body)
	case dispatchKey{tag: objects.Callback, opcode: protocol.CallbackDoneOpcode}:
		return d.handleDone(h, body)
	default:
		log.Warn().
			Uint32("object_id", h.ObjectID).
			Stringer("tag", tag).
			Uint16("opcode", h.Opcode).
			Int("body_len", len(body)).
			Msg("session: unhandled message")
		return OutcomeUnhandled
	}
}

func (d *Dispatcher) handleGlobal(h protocol.Header, body []byte) Outcome {
	cur := protocol.NewCursor(body)

	name, err := cur.ReadU32()
	if err != nil {
		log.Warn().
			Uint32("object_id", h.ObjectID).
			Int("body_len", len(body)).
			Msg("session: global event too short for name, dropped")
		return OutcomeMalformed
	}
	iface, err := cur.ReadString()
	if err != nil {
		log.Warn().
			Uint32("name", name).
			Int("body_len", len(body)).
			Msg("session: global event missing interface string, dropped")
		return OutcomeMalformed
	}
	cur.Align4()
	version, err := cur.ReadU32()
	if err != nil {
		// Absent version reads as zero; the global is still recorded.
		version = 0
	}

	entry := catalog.Entry{Name: name, Interface: iface, Version: version}
	d.catalog.Upsert(entry)
	if d.OnGlobal != nil {
		d.OnGlobal(entry)
	}
	log.Debug().
		Uint32("name", name).
		Str("interface", iface).
		Uint32("version", version).
		Msg("session: global recorded")
	return OutcomeGlobal
}

func (d *Dispatcher) handleDone(h protocol.Header, body []byte) Outcome {
	cur := protocol.NewCursor(body)
	serial, err := cur.ReadU32()
	if err != nil {
		serial = 0
	}
	if d.OnDone != nil {
		d.OnDone(serial)
	}
	log.Debug().
		Uint32("object_id", h.ObjectID).
		Uint32("serial", serial).
		Msg("session: callback done")
	return OutcomeDone
}
