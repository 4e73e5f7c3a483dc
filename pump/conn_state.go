package pump

import (
	"sync/atomic"

	"github.com/arloliu/go-cavro/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

// ConnState represents the lifecycle stage of a pump session.
type ConnState uint32

// Pump session states. The only transitions are Disconnected → Connecting →
// Connected, and any state → Disconnected via Disconnect.
const (
	// DisconnectedState indicates no transport channel is held.
	DisconnectedState ConnState = iota
	// ConnectingState indicates an endpoint scan is in progress.
	ConnectingState
	// ConnectedState indicates a channel has been adopted and commands may
	// be issued.
	ConnectedState
)

// IsDisconnected returns if the current state is disconnected.
func (cs ConnState) IsDisconnected() bool { return cs == DisconnectedState }

// IsConnecting returns if the current state is connecting.
func (cs ConnState) IsConnecting() bool { return cs == ConnectingState }

// IsConnected returns if the current state is connected.
func (cs ConnState) IsConnected() bool { return cs == ConnectedState }

// String returns string representation of the current state.
func (cs ConnState) String() string {
	switch cs {
	case DisconnectedState:
		return "disconnected"
	case ConnectingState:
		return "connecting"
	case ConnectedState:
		return "connected"
	default:
		return "unknown"
	}
}

// StateChangeHandler is invoked when the session state changes.
//
// Handlers run synchronously on the goroutine performing the transition;
// take care with long-running implementations. Invocation order across
// handlers is unspecified.
type StateChangeHandler func(prevState ConnState, newState ConnState)

// connStateMgr tracks the session state and notifies registered handlers on
// transitions. Handler registration and removal are safe from any goroutine,
// including while a command is in flight.
type connStateMgr struct {
	state     atomic.Uint32
	handlerID atomic.Uint64
	handlers  *xsync.MapOf[uint64, StateChangeHandler]
	logger    logger.Logger
}

func newConnStateMgr(l logger.Logger) *connStateMgr {
	mgr := &connStateMgr{
		handlers: xsync.NewMapOf[uint64, StateChangeHandler](),
		logger:   l,
	}
	mgr.state.Store(uint32(DisconnectedState))

	return mgr
}

// State returns the current session state.
func (cs *connStateMgr) State() ConnState {
	return ConnState(cs.state.Load())
}

// addHandler registers a handler and returns its removal token.
func (cs *connStateMgr) addHandler(handler StateChangeHandler) uint64 {
	id := cs.handlerID.Add(1)
	cs.handlers.Store(id, handler)

	return id
}

// removeHandler unregisters the handler identified by id.
func (cs *connStateMgr) removeHandler(id uint64) {
	cs.handlers.Delete(id)
}

// setState transitions to newState and invokes registered handlers. It is a
// no-op when newState equals the current state.
func (cs *connStateMgr) setState(newState ConnState) {
	prevState := ConnState(cs.state.Swap(uint32(newState)))
	if prevState == newState {
		return
	}

	cs.logger.Debug("session state changed", "prev_state", prevState, "new_state", newState)

	cs.handlers.Range(func(_ uint64, handler StateChangeHandler) bool {
		if handler != nil {
			handler(prevState, newState)
		}
		return true
	})
}
