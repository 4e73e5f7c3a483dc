package cavro

import "fmt"

// SyringeSize is the full-stroke volume of the installed syringe, in
// microliters. Only the fixed set of sizes manufactured for this instrument
// family is valid.
//
// The size is carried as configuration for forward compatibility; the driver
// does not currently convert plunger steps to volume.
type SyringeSize uint16

const (
	Syringe50uL   SyringeSize = 50
	Syringe100uL  SyringeSize = 100
	Syringe250uL  SyringeSize = 250
	Syringe500uL  SyringeSize = 500
	Syringe1000uL SyringeSize = 1000
	Syringe2500uL SyringeSize = 2500
	Syringe5000uL SyringeSize = 5000
)

// IsValid reports whether the syringe size is one of the manufactured
// full-stroke volumes.
func (s SyringeSize) IsValid() bool {
	switch s {
	case Syringe50uL, Syringe100uL, Syringe250uL, Syringe500uL,
		Syringe1000uL, Syringe2500uL, Syringe5000uL:
		return true
	default:
		return false
	}
}

// String returns a human-readable representation of the syringe size.
func (s SyringeSize) String() string {
	return fmt.Sprintf("%duL", uint16(s))
}
