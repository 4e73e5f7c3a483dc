package cavro

import "fmt"

// ValvePosition is one of the three discrete flow-path selections on the
// instrument's rotary valve. The wire encodes the ordinal as a single ASCII
// decimal digit.
type ValvePosition byte

const (
	// ValvePosition1 is the first flow-path selection.
	ValvePosition1 ValvePosition = 1
	// ValvePosition2 is the second flow-path selection.
	ValvePosition2 ValvePosition = 2
	// ValvePosition3 is the third flow-path selection.
	ValvePosition3 ValvePosition = 3
)

// IsValid reports whether the valve position is in the closed set {1, 2, 3}.
func (v ValvePosition) IsValid() bool {
	return v >= ValvePosition1 && v <= ValvePosition3
}

// Digit returns the ASCII decimal digit that encodes the valve position on
// the wire. The result is only meaningful when IsValid is true.
func (v ValvePosition) Digit() byte {
	return '0' + byte(v)
}

// ValvePositionFromDigit decodes a valve position from the ASCII digit
// reported by the valve query command. Any character other than '1', '2' or
// '3' returns ErrInvalidValvePosition; callers must treat that as a protocol
// anomaly rather than guess.
func ValvePositionFromDigit(c byte) (ValvePosition, error) {
	switch c {
	case '1', '2', '3':
		return ValvePosition(c - '0'), nil
	default:
		return 0, fmt.Errorf("%w: digit 0x%02X", ErrInvalidValvePosition, c)
	}
}

// String returns a human-readable representation of the valve position.
func (v ValvePosition) String() string {
	if !v.IsValid() {
		return fmt.Sprintf("invalid(%d)", byte(v))
	}

	return fmt.Sprintf("%d", byte(v))
}
