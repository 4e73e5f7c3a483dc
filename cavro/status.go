package cavro

// StatusCode is the error code reported by the instrument in the low nibble
// of a reply's status byte.
//
// The taxonomy is closed: twelve meaningful codes plus the StatusUnused
// sentinel, which covers the reserved low-nibble values 8, 12, 13 and 14.
type StatusCode byte

const (
	// StatusNoError indicates the command completed without error.
	StatusNoError StatusCode = 0
	// StatusInitialization indicates an initialization error.
	StatusInitialization StatusCode = 1
	// StatusInvalidCommand indicates the device rejected the command mnemonic.
	StatusInvalidCommand StatusCode = 2
	// StatusInvalidOperand indicates a command argument was out of range for the device.
	StatusInvalidOperand StatusCode = 3
	// StatusInvalidCommandSequence indicates commands were issued in an order
	// the device does not accept.
	StatusInvalidCommandSequence StatusCode = 4
	// StatusUnused is the sentinel for reserved status codes (5, 8, 12, 13, 14).
	StatusUnused StatusCode = 5
	// StatusEEPROMFailure indicates a device EEPROM failure.
	StatusEEPROMFailure StatusCode = 6
	// StatusDeviceNotInitialized indicates the device must be initialized
	// before it can execute the command.
	StatusDeviceNotInitialized StatusCode = 7
	// StatusPlungerOverload indicates the plunger drive stalled or overloaded.
	StatusPlungerOverload StatusCode = 9
	// StatusValveOverload indicates the valve drive stalled or overloaded.
	StatusValveOverload StatusCode = 10
	// StatusPlungerMoveNotAllowed indicates a plunger move is not permitted
	// in the current valve state.
	StatusPlungerMoveNotAllowed StatusCode = 11
	// StatusCommandOverflow indicates the device received a command while its
	// command buffer was full.
	StatusCommandOverflow StatusCode = 15
)

// statusCodeFromNibble maps a status byte low nibble onto the StatusCode
// taxonomy. Reserved nibble values decode to StatusUnused.
func statusCodeFromNibble(nibble byte) StatusCode {
	switch code := StatusCode(nibble & 0x0F); code {
	case StatusNoError, StatusInitialization, StatusInvalidCommand,
		StatusInvalidOperand, StatusInvalidCommandSequence,
		StatusEEPROMFailure, StatusDeviceNotInitialized,
		StatusPlungerOverload, StatusValveOverload,
		StatusPlungerMoveNotAllowed, StatusCommandOverflow:
		return code
	default:
		return StatusUnused
	}
}

// String returns the name of the status code.
func (s StatusCode) String() string {
	switch s {
	case StatusNoError:
		return "no-error"
	case StatusInitialization:
		return "initialization-error"
	case StatusInvalidCommand:
		return "invalid-command"
	case StatusInvalidOperand:
		return "invalid-operand"
	case StatusInvalidCommandSequence:
		return "invalid-command-sequence"
	case StatusUnused:
		return "unused"
	case StatusEEPROMFailure:
		return "eeprom-failure"
	case StatusDeviceNotInitialized:
		return "device-not-initialized"
	case StatusPlungerOverload:
		return "plunger-overload"
	case StatusValveOverload:
		return "valve-overload"
	case StatusPlungerMoveNotAllowed:
		return "plunger-move-not-allowed"
	case StatusCommandOverflow:
		return "command-overflow"
	default:
		return "unknown"
	}
}
