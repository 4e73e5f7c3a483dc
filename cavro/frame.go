package cavro

import "fmt"

// Wire framing bytes.
const (
	// FrameStart opens every request frame.
	FrameStart byte = '/'

	// FrameEnd terminates every request frame.
	FrameEnd byte = '\r'

	// ETX precedes the carriage return in the reply terminator.
	ETX byte = 0x03
)

// ReplyTerminator is the transport-level terminator sequence that closes
// every reply frame. The transport strips it before handing bytes to Decode.
var ReplyTerminator = []byte{ETX, '\r', '\n'}

// EncodeFrame renders the exact byte sequence sent on the wire for one
// command addressed to one device:
//
//	'/' <address char> <command body> '\r'
//
// Encoding is total over valid address/command pairs.
func EncodeFrame(addr Address, cmd Command) []byte {
	body := cmd.Body()
	frame := make([]byte, 0, len(body)+3)
	frame = append(frame, FrameStart, addr.Char())
	frame = append(frame, body...)
	frame = append(frame, FrameEnd)

	return frame
}

// ParseFrame recovers the address and command body from a request frame
// produced by EncodeFrame. It is the inverse of EncodeFrame and exists for
// diagnostics and device simulation.
func ParseFrame(frame []byte) (Address, string, error) {
	if len(frame) < 3 {
		return 0, "", fmt.Errorf("cavro: request frame too short: %d bytes", len(frame))
	}
	if frame[0] != FrameStart {
		return 0, "", fmt.Errorf("cavro: request frame does not start with %q", FrameStart)
	}
	if frame[len(frame)-1] != FrameEnd {
		return 0, "", fmt.Errorf("cavro: request frame does not end with %q", FrameEnd)
	}

	addr, err := AddressFromChar(frame[1])
	if err != nil {
		return 0, "", err
	}

	return addr, string(frame[2 : len(frame)-1]), nil
}
