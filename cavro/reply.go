package cavro

import (
	"bytes"
	"fmt"
)

// statusByteOffset is the fixed, zero-based position of the status byte in a
// reply. The protocol pins it there regardless of payload length.
const statusByteOffset = 2

// Status byte high-nibble values.
const (
	readyNibble byte = 0x6 // idle, ready for a new command
	busyNibble  byte = 0x4 // executing a command
)

// Reply is the decoded form of one raw reply frame. It is produced per
// request and consumed immediately; it is never persisted.
type Reply struct {
	// Ready reports whether the device is idle and ready to accept a new
	// command (status byte high nibble 0x6) or busy executing (0x4).
	Ready bool

	// Status is the error code reported in the status byte's low nibble.
	Status StatusCode

	// Data holds the payload bytes that followed the status byte, in wire
	// order. Payload may be binary; no text encoding is assumed. Empty for
	// replies with no payload.
	Data []byte
}

// Decode interprets the raw bytes of one reply, as delivered by a single
// transport read. The transport normally strips the reply terminator; any
// terminator remnant (ETX, CR, LF) left at the tail is tolerated and excluded
// from the payload.
//
// Decode is pure and deterministic. Fewer than 3 bytes is a transport-level
// framing error reported as ErrReplyTooShort; a high nibble outside
// {0x4, 0x6} is reported as ErrInvalidStatusByte.
func Decode(raw []byte) (Reply, error) {
	if len(raw) <= statusByteOffset {
		return Reply{}, fmt.Errorf("%w: got %d bytes", ErrReplyTooShort, len(raw))
	}

	statusByte := raw[statusByteOffset]

	var ready bool
	switch statusByte >> 4 {
	case readyNibble:
		ready = true
	case busyNibble:
		ready = false
	default:
		return Reply{}, fmt.Errorf("%w: status byte 0x%02X", ErrInvalidStatusByte, statusByte)
	}

	reply := Reply{
		Ready:  ready,
		Status: statusCodeFromNibble(statusByte),
	}

	payload := bytes.TrimRight(raw[statusByteOffset+1:], "\x03\r\n")
	if len(payload) > 0 {
		reply.Data = make([]byte, len(payload))
		copy(reply.Data, payload)
	}

	return reply, nil
}
