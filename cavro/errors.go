package cavro

import "errors"

var (
	// ErrReplyTooShort indicates that a raw reply contained fewer than 3
	// bytes, so no status byte could be located. This is a transport-level
	// framing problem, not a device-reported status.
	ErrReplyTooShort = errors.New("cavro: reply shorter than 3 bytes, no status byte")

	// ErrInvalidStatusByte indicates that the status byte's high nibble was
	// neither 0x6 (ready) nor 0x4 (busy).
	ErrInvalidStatusByte = errors.New("cavro: status byte high nibble is neither ready nor busy")

	// ErrInvalidAddress indicates that a device address outside the valid
	// range [1, 15] was provided.
	ErrInvalidAddress = errors.New("cavro: invalid device address, should be in range of [1, 15]")

	// ErrInvalidValvePosition indicates that a valve position outside the
	// closed set {1, 2, 3} was provided or decoded.
	ErrInvalidValvePosition = errors.New("cavro: invalid valve position, should be 1, 2 or 3")

	// ErrInvalidSyringeSize indicates that a syringe size outside the fixed
	// set of full-stroke volumes was provided.
	ErrInvalidSyringeSize = errors.New("cavro: invalid syringe size")
)
