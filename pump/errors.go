package pump

import (
	"errors"
	"fmt"

	"github.com/arloliu/go-cavro/cavro"
)

var (
	// ErrConfigNil indicates that a nil ConnectionConfig was provided.
	ErrConfigNil = errors.New("pump: connection config is nil")

	// ErrDeviceNotFound indicates that no scanned endpoint produced a
	// well-formed reply during Connect.
	ErrDeviceNotFound = errors.New("pump: device not found on any endpoint")

	// ErrNotConnected indicates that a command was issued on a pump that is
	// not in the connected state.
	ErrNotConnected = errors.New("pump: not connected")

	// ErrUnexpectedPayload indicates that a reply payload did not have the
	// shape the command requires, e.g. a valve query with an empty payload.
	ErrUnexpectedPayload = errors.New("pump: unexpected reply payload")
)

// DeviceError is a failure reported by the instrument itself through the
// status byte of a reply. The specific code is preserved so callers can
// distinguish, say, a plunger overload from an invalid operand with
// errors.As.
type DeviceError struct {
	Code cavro.StatusCode
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("pump: device reported %s", e.Code)
}
