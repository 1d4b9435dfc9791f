package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// DecodeHeader parses exactly one wire header.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) != HeaderSize {
		return Header{}, fmt.Errorf("protocol: invalid header buffer length: %d", len(b))
	}
	combined := binary.NativeEndian.Uint32(b[4:8])
	h := Header{
		ObjectID: binary.NativeEndian.Uint32(b[0:4]),
		Size:     uint16(combined >> 16),
		Opcode:   uint16(combined & 0xffff),
	}
	if h.Size < HeaderSize {
		return Header{}, ErrInvalidSize
	}
	return h, nil
}

// ReadHeader reads the next message header from r. A clean close before
// the first header byte is ErrEndOfStream and ends a session normally; a
// close after partial header bytes is ErrTruncatedHeader. Any other I/O
// error passes through untouched.
func ReadHeader(r io.Reader) (Header, error) {
	var fixed [HeaderSize]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Header{}, ErrEndOfStream
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, ErrTruncatedHeader
		}
		return Header{}, err
	}
	return DecodeHeader(fixed[:])
}

// ReadBody reads the body h declares. Any shortfall is ErrTruncatedBody:
// once a header has been consumed the stream cannot be reframed.
func ReadBody(r io.Reader, h Header) ([]byte, error) {
	bodyLen := h.BodyLen()
	if bodyLen == 0 {
		return nil, nil
	}
	body := make([]byte, bodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncatedBody
		}
		return nil, err
	}
	return body, nil
}
