// Package transport defines the duplex byte channel the pump driver speaks
// through, and provides a production serial implementation built on
// go.bug.st/serial.
//
// The driver performs strict request/response alternation: one Write, then
// one ReadUntil. A Channel therefore never needs to support concurrent use.
package transport

import (
	"errors"
	"time"
)

var (
	// ErrReadTimeout indicates that a read did not see the delimiter within
	// the channel's configured read timeout. It is distinct from any
	// protocol-level status reported by the device.
	ErrReadTimeout = errors.New("transport: read timeout")

	// ErrChannelClosed indicates an operation on a closed channel.
	ErrChannelClosed = errors.New("transport: channel closed")
)

// Channel is an open duplex byte stream to one instrument.
//
// A Channel is exclusively owned by the session that adopted it; it must not
// be shared or outlive the session.
type Channel interface {
	// Write sends the given bytes in full.
	Write(p []byte) error

	// ReadUntil blocks until the delimiter sequence arrives, then returns
	// the bytes received before it, with the delimiter stripped. It returns
	// ErrReadTimeout if the delimiter is not seen within the channel's read
	// timeout.
	ReadUntil(delim []byte) ([]byte, error)

	// DiscardBuffers drops any pending bytes in both directions.
	DiscardBuffers() error

	// Close releases the channel. Close is idempotent.
	Close() error
}

// Opener enumerates candidate endpoints and opens channels to them.
type Opener interface {
	// Enumerate lists the endpoint identifiers currently available on this
	// host, in scan order.
	Enumerate() ([]string, error)

	// Open establishes a channel to the given endpoint with the given
	// blocking-read timeout.
	Open(endpoint string, readTimeout time.Duration) (Channel, error)
}
