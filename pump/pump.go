package pump

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arloliu/go-cavro/cavro"
	"github.com/arloliu/go-cavro/logger"
	"github.com/arloliu/go-cavro/transport"
)

// Pump is a live session with one addressed syringe pump/valve instrument.
//
// A Pump exclusively owns its transport channel from Connect until
// Disconnect. Public command methods are serialized by an internal mutex, so
// a Pump is safe for use from multiple goroutines, but commands always
// execute one at a time in strict request/response alternation.
type Pump struct {
	cfg    *ConnectionConfig
	logger logger.Logger

	// mu serializes every wire exchange. The device accepts only one
	// outstanding command; interleaved writes would corrupt the line.
	mu sync.Mutex

	stateMgr *connStateMgr
	channel  transport.Channel
	endpoint string
}

// NewPump creates a pump session from the given configuration. The session
// starts disconnected; call Connect before issuing commands.
func NewPump(cfg *ConnectionConfig) (*Pump, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	l := cfg.GetLogger().With("device_addr", cfg.Address().String())

	return &Pump{
		cfg:      cfg,
		logger:   l,
		stateMgr: newConnStateMgr(l),
	}, nil
}

// State returns the current session state.
func (p *Pump) State() ConnState {
	return p.stateMgr.State()
}

// Endpoint returns the endpoint adopted by the last successful Connect, or
// an empty string when disconnected.
func (p *Pump) Endpoint() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.endpoint
}

// OnStateChange registers a handler invoked on session state transitions and
// returns a token for RemoveStateChangeHandler.
func (p *Pump) OnStateChange(handler StateChangeHandler) uint64 {
	return p.stateMgr.addHandler(handler)
}

// RemoveStateChangeHandler unregisters a handler registered by OnStateChange.
func (p *Pump) RemoveStateChangeHandler(id uint64) {
	p.stateMgr.removeHandler(id)
}

// Connect scans candidate endpoints and adopts the first one that yields a
// well-formed status reply. Connect is idempotent: it is a no-op when the
// session is already connected.
//
// Every endpoint that is probed and not adopted is closed before Connect
// returns; on failure no endpoint is left open and the session remains
// disconnected.
func (p *Pump) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stateMgr.State().IsConnected() {
		return nil
	}

	p.stateMgr.setState(ConnectingState)

	endpoints := p.cfg.Endpoints()
	if len(endpoints) == 0 {
		var err error
		endpoints, err = p.cfg.Opener().Enumerate()
		if err != nil {
			p.stateMgr.setState(DisconnectedState)
			return fmt.Errorf("pump: enumerate endpoints: %w", err)
		}
	}

	for _, endpoint := range endpoints {
		if err := ctx.Err(); err != nil {
			p.stateMgr.setState(DisconnectedState)
			return fmt.Errorf("pump: connect aborted: %w", err)
		}

		if p.probeEndpoint(endpoint) {
			p.stateMgr.setState(ConnectedState)
			p.logger.Info("connected", "endpoint", endpoint)

			return nil
		}
	}

	p.stateMgr.setState(DisconnectedState)

	return ErrDeviceNotFound
}

// probeEndpoint opens the endpoint, clears both buffers and sends a status
// query. On a decodable reply the channel is adopted; otherwise it is closed.
func (p *Pump) probeEndpoint(endpoint string) bool {
	ch, err := p.cfg.Opener().Open(endpoint, p.cfg.ReadTimeout())
	if err != nil {
		p.logger.Debug("endpoint open failed", "endpoint", endpoint, "error", err)
		return false
	}

	if err := ch.DiscardBuffers(); err != nil {
		p.logger.Debug("endpoint discard failed", "endpoint", endpoint, "error", err)
		_ = ch.Close()

		return false
	}

	if err := ch.Write(cavro.EncodeFrame(p.cfg.Address(), cavro.StatusQuery())); err != nil {
		p.logger.Debug("endpoint probe write failed", "endpoint", endpoint, "error", err)
		_ = ch.Close()

		return false
	}

	raw, err := ch.ReadUntil(cavro.ReplyTerminator)
	if err != nil {
		p.logger.Debug("endpoint probe read failed", "endpoint", endpoint, "error", err)
		_ = ch.Close()

		return false
	}

	if _, err := cavro.Decode(raw); err != nil {
		p.logger.Debug("endpoint probe decode failed", "endpoint", endpoint, "error", err)
		_ = ch.Close()

		return false
	}

	p.channel = ch
	p.endpoint = endpoint

	return true
}

// Disconnect closes and releases the channel, if held, and moves the session
// to the disconnected state. Disconnect is idempotent and always leaves the
// session disconnected, even when closing the channel fails.
func (p *Pump) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.channel != nil {
		err = p.channel.Close()
		p.channel = nil
		p.endpoint = ""
	}

	p.stateMgr.setState(DisconnectedState)
	if err != nil {
		return fmt.Errorf("pump: disconnect: %w", err)
	}

	return nil
}

// WaitForReady polls the device status until it reports idle/ready.
//
// The wait is unbounded by default; it ends early when ctx is canceled or
// when the configured wait budget elapses.
func (p *Pump) WaitForReady(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.waitForReady(ctx)
}

// Initialize homes the plunger and valve drives. The device reports
// DeviceNotInitialized until homing is accepted, so the whole
// wait-then-initialize cycle repeats while that specific status comes back.
func (p *Pump) Initialize(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		if err := p.waitForReady(ctx); err != nil {
			return err
		}

		reply, err := p.exchange(ctx, cavro.Initialize())
		if err != nil {
			return err
		}

		if reply.Status == cavro.StatusDeviceNotInitialized {
			p.logger.Debug("device not initialized yet, retrying initialization")
			continue
		}

		if reply.Status != cavro.StatusNoError {
			p.logger.Warn("initialize finished with non-clear status", "status", reply.Status.String())
		}

		return nil
	}
}

// SetSpeed sets the plunger speed code. Values above cavro.MaxSpeed are
// silently clamped, not rejected.
func (p *Pump) SetSpeed(ctx context.Context, speed int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.waitForReady(ctx); err != nil {
		return err
	}

	reply, err := p.exchange(ctx, cavro.SetSpeed(speed))
	if err != nil {
		return err
	}

	return replyError(reply)
}

// SetAbsolutePosition moves the plunger to an absolute position in steps.
// Values above cavro.MaxPlungerPosition are silently clamped, not rejected.
//
// Once the frame is sent the plunger motion is irreversible; a device error
// mid-motion leaves the plunger wherever the error left it.
func (p *Pump) SetAbsolutePosition(ctx context.Context, position int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.waitForReady(ctx); err != nil {
		return err
	}

	reply, err := p.exchange(ctx, cavro.MoveAbsolute(position))
	if err != nil {
		return err
	}

	return replyError(reply)
}

// GetValvePosition queries the current valve position.
func (p *Pump) GetValvePosition(ctx context.Context) (cavro.ValvePosition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.waitForReady(ctx); err != nil {
		return 0, err
	}

	return p.queryValve(ctx)
}

// SetValvePosition rotates the valve to the target position. The current
// position is queried first; when it already matches the target no actuation
// frame is sent, avoiding a redundant valve rotation.
func (p *Pump) SetValvePosition(ctx context.Context, target cavro.ValvePosition) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: %d", cavro.ErrInvalidValvePosition, byte(target))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.waitForReady(ctx); err != nil {
		return err
	}

	current, err := p.queryValve(ctx)
	if err != nil {
		return err
	}

	if current == target {
		p.logger.Debug("valve already at target position", "position", target.String())
		return nil
	}

	reply, err := p.exchange(ctx, cavro.SetValve(target))
	if err != nil {
		return err
	}

	return replyError(reply)
}

// waitForReady is the Q-poll loop. The caller must hold p.mu.
func (p *Pump) waitForReady(ctx context.Context) error {
	if budget := p.cfg.WaitBudget(); budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	for {
		reply, err := p.exchange(ctx, cavro.StatusQuery())
		if err != nil {
			return err
		}

		if reply.Ready {
			return nil
		}

		p.logger.Debug("device busy", "status", reply.Status.String())
		if err := sleep(ctx, p.cfg.PollInterval()); err != nil {
			return fmt.Errorf("pump: wait for ready: %w", err)
		}
	}
}

// queryValve sends the valve query and decodes the single payload digit.
// The caller must hold p.mu and have completed a ready wait.
func (p *Pump) queryValve(ctx context.Context) (cavro.ValvePosition, error) {
	reply, err := p.exchange(ctx, cavro.ValveQuery())
	if err != nil {
		return 0, err
	}

	if err := replyError(reply); err != nil {
		return 0, err
	}

	if len(reply.Data) == 0 {
		return 0, fmt.Errorf("%w: valve query returned no payload", ErrUnexpectedPayload)
	}

	pos, err := cavro.ValvePositionFromDigit(reply.Data[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}

	return pos, nil
}

// exchange performs one request/response round trip. The caller must hold
// p.mu.
func (p *Pump) exchange(ctx context.Context, cmd cavro.Command) (cavro.Reply, error) {
	if p.channel == nil {
		return cavro.Reply{}, ErrNotConnected
	}

	if err := ctx.Err(); err != nil {
		return cavro.Reply{}, fmt.Errorf("pump: command aborted: %w", err)
	}

	frame := cavro.EncodeFrame(p.cfg.Address(), cmd)
	if err := p.channel.Write(frame); err != nil {
		return cavro.Reply{}, err
	}

	raw, err := p.channel.ReadUntil(cavro.ReplyTerminator)
	if err != nil {
		return cavro.Reply{}, err
	}

	reply, err := cavro.Decode(raw)
	if err != nil {
		return cavro.Reply{}, err
	}

	p.logger.Debug("exchange",
		"command", cmd.Body(),
		"ready", reply.Ready,
		"status", reply.Status.String(),
		"payload_len", len(reply.Data),
	)

	return reply, nil
}

// replyError translates a non-clear device status into a DeviceError.
func replyError(reply cavro.Reply) error {
	if reply.Status == cavro.StatusNoError {
		return nil
	}

	return &DeviceError{Code: reply.Status}
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
