package protocol

// HeaderSize is the fixed length of every message header in bytes.
const HeaderSize = 8

// DisplayObjectID is the wl_display singleton. It exists on every
// connection before any message is exchanged and is never reassigned.
const DisplayObjectID uint32 = 1

// Request opcodes on wl_display.
const (
	DisplaySyncOpcode        uint16 = 0
	DisplayGetRegistryOpcode uint16 = 1
)

// Event opcodes.
const (
	RegistryGlobalOpcode uint16 = 0
	CallbackDoneOpcode   uint16 = 0
)

// Header is the fixed wire header carried by every message. Size counts
// the full message including the header itself, so Size >= HeaderSize
// holds for every well-formed message.
type Header struct {
	ObjectID uint32
	Size     uint16
	Opcode   uint16
}

// BodyLen returns the number of body bytes the header declares.
func (h Header) BodyLen() int {
	return int(h.Size) - HeaderSize
}
