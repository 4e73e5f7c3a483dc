package cavro

import "strconv"

// Clamp limits for numeric command arguments.
const (
	// MaxSpeed is the highest plunger speed code the instrument accepts.
	MaxSpeed = 40

	// MaxPlungerPosition is the absolute plunger position at full stroke,
	// in steps.
	MaxPlungerPosition = 3000
)

// Command is one logical instruction for the instrument. The set of
// commands is closed: each variant carries typed fields and renders its own
// exact ASCII body, so a malformed command body cannot be constructed.
type Command interface {
	// Body returns the ASCII command body placed between the address
	// character and the frame terminator.
	Body() string
}

type statusQueryCmd struct{}

type initializeCmd struct{}

type setSpeedCmd struct {
	speed int
}

type moveAbsoluteCmd struct {
	position int
}

type valveQueryCmd struct{}

type setValveCmd struct {
	position ValvePosition
}

// StatusQuery reports the device's readiness and last error without side
// effects. It is the probe used for connection scanning and ready polling.
func StatusQuery() Command { return statusQueryCmd{} }

// Initialize homes the plunger and valve drives.
func Initialize() Command { return initializeCmd{} }

// SetSpeed sets the plunger speed code. Values above MaxSpeed are clamped,
// not rejected.
func SetSpeed(speed int) Command {
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	if speed < 0 {
		speed = 0
	}

	return setSpeedCmd{speed: speed}
}

// MoveAbsolute moves the plunger to an absolute position in steps. Values
// above MaxPlungerPosition are clamped, not rejected.
func MoveAbsolute(position int) Command {
	if position > MaxPlungerPosition {
		position = MaxPlungerPosition
	}
	if position < 0 {
		position = 0
	}

	return moveAbsoluteCmd{position: position}
}

// ValveQuery reports the current valve position as a single ASCII digit in
// the reply payload.
func ValveQuery() Command { return valveQueryCmd{} }

// SetValve rotates the valve to the given position. The position must be
// valid; callers validate before constructing the command.
func SetValve(position ValvePosition) Command {
	return setValveCmd{position: position}
}

func (statusQueryCmd) Body() string { return "Q" }

func (initializeCmd) Body() string { return "Z0,0,0R" }

func (c setSpeedCmd) Body() string { return "S" + strconv.Itoa(c.speed) + "R" }

func (c moveAbsoluteCmd) Body() string { return "A" + strconv.Itoa(c.position) + "R" }

func (valveQueryCmd) Body() string { return "?6" }

func (c setValveCmd) Body() string { return "I" + string(c.position.Digit()) + "R" }
