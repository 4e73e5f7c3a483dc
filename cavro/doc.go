// Package cavro implements the wire protocol spoken by Cavro-class syringe
// pump/valve instruments over a point-to-point serial line.
//
// The protocol is a compact ASCII command language with a binary status
// encoding. A request frame is:
//
//	'/' <address char> <command body> '\r'
//
// where the address char is one of the 15 reserved characters 0x31..0x3F and
// the command body is a short ASCII mnemonic with optional decimal arguments
// (e.g. "S12R", "A500R", "Z0,0,0R", "Q", "?6").
//
// A reply carries a status byte at a fixed offset (the third byte received).
// The status byte's high nibble encodes readiness (0x6 = idle/ready, 0x4 =
// busy/executing) and its low nibble encodes an error code from a closed
// taxonomy. Any bytes after the status byte, up to the transport terminator,
// are payload.
//
// This package is pure: it builds request frames and decodes raw reply bytes.
// Session management, polling and the command surface live in the pump
// package; byte transport lives in the transport package.
package cavro
