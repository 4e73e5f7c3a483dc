package pump

import (
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/go-cavro/cavro"
	"github.com/arloliu/go-cavro/logger"
	"github.com/arloliu/go-cavro/transport"
)

// Default timing values.
const (
	// DefaultReadTimeout is the blocking-read timeout applied to opened
	// channels.
	DefaultReadTimeout = 1 * time.Second

	// DefaultPollInterval is the backoff between ready polls while the
	// device is busy.
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultWaitBudget is the default ready-wait time budget. Zero means
	// unbounded: the instrument is trusted to eventually become ready.
	DefaultWaitBudget = 0 * time.Second
)

// ConnectionConfig holds all configuration for one pump session.
type ConnectionConfig struct {
	// address is the device's identity on the shared line.
	address cavro.Address

	// syringeSize is the installed syringe's full-stroke volume. Carried
	// for forward compatibility; not yet consumed by the driver.
	syringeSize cavro.SyringeSize

	// opener supplies candidate endpoints and opens channels to them.
	opener transport.Opener

	// endpoints, when non-empty, overrides opener.Enumerate() as the scan
	// list for Connect.
	endpoints []string

	readTimeout  time.Duration
	pollInterval time.Duration

	// waitBudget bounds each ready wait; zero means unbounded.
	waitBudget time.Duration

	logger logger.Logger
}

// NewConnectionConfig creates a pump session configuration for the device at
// the given address.
//
// opts are functional options applied in order; see With* functions.
func NewConnectionConfig(address cavro.Address, opts ...ConnOption) (*ConnectionConfig, error) {
	if !address.IsValid() {
		return nil, fmt.Errorf("%w: %d", cavro.ErrInvalidAddress, byte(address))
	}

	cfg := &ConnectionConfig{
		address:      address,
		syringeSize:  cavro.Syringe1000uL,
		opener:       transport.NewSerialOpener(),
		readTimeout:  DefaultReadTimeout,
		pollInterval: DefaultPollInterval,
		waitBudget:   DefaultWaitBudget,
		logger:       logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// --- Getters ---

// Address returns the configured device address.
func (cfg *ConnectionConfig) Address() cavro.Address { return cfg.address }

// SyringeSize returns the configured syringe full-stroke volume.
func (cfg *ConnectionConfig) SyringeSize() cavro.SyringeSize { return cfg.syringeSize }

// Opener returns the configured transport opener.
func (cfg *ConnectionConfig) Opener() transport.Opener { return cfg.opener }

// Endpoints returns the explicit endpoint scan list, or nil when Connect
// should enumerate endpoints through the opener.
func (cfg *ConnectionConfig) Endpoints() []string { return cfg.endpoints }

// ReadTimeout returns the blocking-read timeout for opened channels.
func (cfg *ConnectionConfig) ReadTimeout() time.Duration { return cfg.readTimeout }

// PollInterval returns the backoff between ready polls.
func (cfg *ConnectionConfig) PollInterval() time.Duration { return cfg.pollInterval }

// WaitBudget returns the per-wait time budget; zero means unbounded.
func (cfg *ConnectionConfig) WaitBudget() time.Duration { return cfg.waitBudget }

// GetLogger returns the configured logger.
func (cfg *ConnectionConfig) GetLogger() logger.Logger { return cfg.logger }

// --- ConnOption ---

// ConnOption is a functional option for configuring a ConnectionConfig.
type ConnOption interface {
	apply(*ConnectionConfig) error
}

type connOptFunc func(*ConnectionConfig) error

func (f connOptFunc) apply(cfg *ConnectionConfig) error { return f(cfg) }

// WithSyringeSize records the installed syringe's full-stroke volume.
func WithSyringeSize(size cavro.SyringeSize) ConnOption {
	return connOptFunc(func(cfg *ConnectionConfig) error {
		if !size.IsValid() {
			return fmt.Errorf("%w: %d", cavro.ErrInvalidSyringeSize, uint16(size))
		}
		cfg.syringeSize = size

		return nil
	})
}

// WithOpener sets the transport opener used to scan and open endpoints.
// The default is a serial opener with the instrument's factory settings.
func WithOpener(opener transport.Opener) ConnOption {
	return connOptFunc(func(cfg *ConnectionConfig) error {
		if opener == nil {
			return errors.New("pump: opener must not be nil")
		}
		cfg.opener = opener

		return nil
	})
}

// WithEndpoints fixes the endpoint scan list for Connect instead of
// enumerating endpoints through the opener.
func WithEndpoints(endpoints ...string) ConnOption {
	return connOptFunc(func(cfg *ConnectionConfig) error {
		if len(endpoints) == 0 {
			return errors.New("pump: endpoint list must not be empty")
		}
		cfg.endpoints = endpoints

		return nil
	})
}

// WithReadTimeout sets the blocking-read timeout for opened channels.
func WithReadTimeout(d time.Duration) ConnOption {
	return connOptFunc(func(cfg *ConnectionConfig) error {
		if d <= 0 {
			return errors.New("pump: read timeout must be positive")
		}
		cfg.readTimeout = d

		return nil
	})
}

// WithPollInterval sets the backoff between ready polls.
func WithPollInterval(d time.Duration) ConnOption {
	return connOptFunc(func(cfg *ConnectionConfig) error {
		if d <= 0 {
			return errors.New("pump: poll interval must be positive")
		}
		cfg.pollInterval = d

		return nil
	})
}

// WithWaitBudget bounds each ready wait to the given duration. Zero restores
// the default unbounded behavior.
func WithWaitBudget(d time.Duration) ConnOption {
	return connOptFunc(func(cfg *ConnectionConfig) error {
		if d < 0 {
			return errors.New("pump: wait budget must not be negative")
		}
		cfg.waitBudget = d

		return nil
	})
}

// WithLogger sets the logger for the session.
func WithLogger(l logger.Logger) ConnOption {
	return connOptFunc(func(cfg *ConnectionConfig) error {
		if l == nil {
			return errors.New("pump: logger must not be nil")
		}
		cfg.logger = l

		return nil
	})
}
