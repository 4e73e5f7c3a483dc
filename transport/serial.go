package transport

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// DefaultBaudRate is the factory baud rate of Cavro-class instruments.
const DefaultBaudRate = 9600

// SerialOpener opens serial ports as transport channels.
//
// The zero value is not usable; construct with NewSerialOpener.
type SerialOpener struct {
	mode *serial.Mode
}

var _ Opener = (*SerialOpener)(nil)

// NewSerialOpener creates a SerialOpener with the instrument's factory
// serial settings (9600 baud, 8 data bits, no parity, one stop bit).
func NewSerialOpener() *SerialOpener {
	return &SerialOpener{
		mode: &serial.Mode{
			BaudRate: DefaultBaudRate,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		},
	}
}

// SetBaudRate overrides the baud rate used for subsequently opened ports.
func (o *SerialOpener) SetBaudRate(baud int) {
	o.mode.BaudRate = baud
}

// Enumerate lists the serial port names present on this host.
func (o *SerialOpener) Enumerate() ([]string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("transport: enumerate serial ports: %w", err)
	}

	names := make([]string, 0, len(ports))
	for _, port := range ports {
		names = append(names, port.Name)
	}

	return names, nil
}

// Open opens the named serial port with the configured mode and the given
// blocking-read timeout.
func (o *SerialOpener) Open(endpoint string, readTimeout time.Duration) (Channel, error) {
	port, err := serial.Open(endpoint, o.mode)
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", endpoint, err)
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("transport: set read timeout on %s: %w", endpoint, err)
	}

	return &serialChannel{port: port, endpoint: endpoint}, nil
}

// serialPort is the subset of serial.Port the channel needs. Narrowing the
// dependency keeps the channel testable without a real port.
type serialPort interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	ResetInputBuffer() error
	ResetOutputBuffer() error
	Close() error
}

// serialChannel adapts a serial port to the Channel interface.
type serialChannel struct {
	port     serialPort
	endpoint string
	closed   bool
}

var _ Channel = (*serialChannel)(nil)

func (c *serialChannel) Write(p []byte) error {
	if c.closed {
		return ErrChannelClosed
	}

	n, err := c.port.Write(p)
	if err != nil {
		return fmt.Errorf("transport: write %s: %w", c.endpoint, err)
	}
	if n != len(p) {
		return fmt.Errorf("transport: write %s: %w", c.endpoint, io.ErrShortWrite)
	}

	return nil
}

func (c *serialChannel) ReadUntil(delim []byte) ([]byte, error) {
	if c.closed {
		return nil, ErrChannelClosed
	}

	var acc []byte
	buf := make([]byte, 64)
	for {
		n, err := c.port.Read(buf)
		if err != nil {
			return nil, fmt.Errorf("transport: read %s: %w", c.endpoint, err)
		}
		// go.bug.st/serial reports an expired read timeout as a zero-byte
		// read with a nil error.
		if n == 0 {
			return nil, fmt.Errorf("%w: no terminator on %s", ErrReadTimeout, c.endpoint)
		}

		acc = append(acc, buf[:n]...)
		if idx := bytes.Index(acc, delim); idx >= 0 {
			return acc[:idx], nil
		}
	}
}

func (c *serialChannel) DiscardBuffers() error {
	if c.closed {
		return ErrChannelClosed
	}

	if err := c.port.ResetInputBuffer(); err != nil {
		return fmt.Errorf("transport: reset input buffer on %s: %w", c.endpoint, err)
	}
	if err := c.port.ResetOutputBuffer(); err != nil {
		return fmt.Errorf("transport: reset output buffer on %s: %w", c.endpoint, err)
	}

	return nil
}

func (c *serialChannel) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if err := c.port.Close(); err != nil {
		return fmt.Errorf("transport: close %s: %w", c.endpoint, err)
	}

	return nil
}
