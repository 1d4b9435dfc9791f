package protocol

import "errors"

var (
	ErrEndOfStream     = errors.New("protocol: end of stream")
	ErrTruncatedHeader = errors.New("protocol: truncated header")
	ErrTruncatedBody   = errors.New("protocol: truncated body")
	ErrInvalidSize     = errors.New("protocol: invalid message size")
	ErrOutOfBounds     = errors.New("protocol: read out of bounds")
)
