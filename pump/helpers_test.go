package pump

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-cavro/cavro"
	"github.com/arloliu/go-cavro/transport"
)

// Pre-built status bytes for scripted replies.
const (
	statusReadyOK  byte = 0x60 // ready, no error
	statusBusyOK   byte = 0x40 // busy, no error
	statusBusyInit byte = 0x47 // busy, device not initialized
)

// replyBytes assembles one raw reply as the transport delivers it: protocol
// preamble, status byte, payload, terminator stripped.
func replyBytes(statusByte byte, payload ...byte) []byte {
	return append([]byte{'/', '0', statusByte}, payload...)
}

// exchange is one scripted request/response step: the expected command body
// and either the raw reply or a read error.
type exchange struct {
	wantBody string
	reply    []byte
	readErr  error
}

// scriptChannel is a transport.Channel backed by an ordered script of
// exchanges. Each Write must match the next step's expected command body;
// the following ReadUntil yields that step's reply. When loopReply is set,
// exhausted scripts keep answering every request with it.
type scriptChannel struct {
	t         *testing.T
	steps     []exchange
	idx       int
	loopReply []byte
	closed    bool
}

var _ transport.Channel = (*scriptChannel)(nil)

func newScriptChannel(t *testing.T, steps ...exchange) *scriptChannel {
	t.Helper()
	return &scriptChannel{t: t, steps: steps}
}

func (c *scriptChannel) Write(p []byte) error {
	c.t.Helper()

	_, body, err := cavro.ParseFrame(p)
	require.NoError(c.t, err, "malformed request frame %q", p)

	if c.idx >= len(c.steps) {
		require.NotNil(c.t, c.loopReply, "unexpected frame %q after script end", p)
		return nil
	}

	require.Equal(c.t, c.steps[c.idx].wantBody, body, "frame %d", c.idx)

	return nil
}

func (c *scriptChannel) ReadUntil(_ []byte) ([]byte, error) {
	c.t.Helper()

	if c.idx >= len(c.steps) {
		require.NotNil(c.t, c.loopReply, "unexpected read after script end")
		return c.loopReply, nil
	}

	step := c.steps[c.idx]
	c.idx++
	if step.readErr != nil {
		return nil, step.readErr
	}

	return step.reply, nil
}

func (c *scriptChannel) DiscardBuffers() error { return nil }

func (c *scriptChannel) Close() error {
	c.closed = true
	return nil
}

// assertDone fails the test unless every scripted exchange was consumed.
func (c *scriptChannel) assertDone() {
	c.t.Helper()
	require.Equal(c.t, len(c.steps), c.idx, "script not fully consumed")
}

// scriptOpener hands out a fixed channel for a single fake endpoint.
type scriptOpener struct {
	ch transport.Channel
}

var _ transport.Opener = (*scriptOpener)(nil)

func (o *scriptOpener) Enumerate() ([]string, error) {
	return []string{"sim0"}, nil
}

func (o *scriptOpener) Open(_ string, _ time.Duration) (transport.Channel, error) {
	return o.ch, nil
}

// probeStep is the status-query exchange Connect performs while scanning.
func probeStep() exchange {
	return exchange{wantBody: "Q", reply: replyBytes(statusReadyOK)}
}

// readyStep is the status-query exchange a ready wait performs against an
// idle device.
func readyStep() exchange {
	return exchange{wantBody: "Q", reply: replyBytes(statusReadyOK)}
}

// newConnectedPump builds a pump over the scripted channel and connects it.
// The script must begin with probeStep().
func newConnectedPump(t *testing.T, ch *scriptChannel, opts ...ConnOption) *Pump {
	t.Helper()

	defaults := []ConnOption{
		WithOpener(&scriptOpener{ch: ch}),
		WithPollInterval(time.Millisecond),
	}

	cfg, err := NewConnectionConfig(1, append(defaults, opts...)...)
	require.NoError(t, err)

	p, err := NewPump(cfg)
	require.NoError(t, err)

	require.NoError(t, p.Connect(context.Background()))
	require.True(t, p.State().IsConnected())

	return p
}
