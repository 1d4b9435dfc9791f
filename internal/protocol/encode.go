package protocol

import "encoding/binary"

// EncodeHeader returns the 8-byte wire form of h. The second word packs
// the total message size into the high 16 bits and the opcode into the
// low 16 bits; all integers are native-endian.
func EncodeHeader(h Header) []byte {
	buf := make([]byte, HeaderSize)
	binary.NativeEndian.PutUint32(buf[0:4], h.ObjectID)
	binary.NativeEndian.PutUint32(buf[4:8], uint32(h.Size)<<16|uint32(h.Opcode))
	return buf
}

// EncodeRequest builds one complete request message: a header followed by
// zero or more fixed u32 arguments. The bootstrap requests carry exactly
// one argument each.
func EncodeRequest(objectID uint32, opcode uint16, args ...uint32) []byte {
	size := HeaderSize + 4*len(args)
	buf := make([]byte, 0, size)
	buf = append(buf, EncodeHeader(Header{
		ObjectID: objectID,
		Size:     uint16(size),
		Opcode:   opcode,
	})...)
	for _, arg := range args {
		buf = binary.NativeEndian.AppendUint32(buf, arg)
	}
	return buf
}

// EncodeSync builds wl_display.sync carrying the new callback object id.
func EncodeSync(callbackID uint32) []byte {
	return EncodeRequest(DisplayObjectID, DisplaySyncOpcode, callbackID)
}

// EncodeGetRegistry builds wl_display.get_registry carrying the new
// registry object id.
func EncodeGetRegistry(registryID uint32) []byte {
	return EncodeRequest(DisplayObjectID, DisplayGetRegistryOpcode, registryID)
}
