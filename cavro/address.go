package cavro

import "fmt"

// Address identifies one device on the shared serial line.
//
// Valid addresses are 1 through 15 and map one-to-one onto the reserved
// ASCII characters 0x31..0x3F used on the wire.
type Address byte

// MaxAddress is the highest valid device address.
const MaxAddress Address = 15

// addrCharBase is the ASCII offset of the address character range; address n
// encodes as byte 0x30+n, giving the reserved range 0x31..0x3F.
const addrCharBase byte = 0x30

// IsValid reports whether the address is in the valid range [1, 15].
func (a Address) IsValid() bool {
	return a >= 1 && a <= MaxAddress
}

// Char returns the ASCII character that encodes the address on the wire.
// The result is only meaningful when IsValid is true.
func (a Address) Char() byte {
	return addrCharBase + byte(a)
}

// AddressFromChar recovers the Address encoded by an on-wire address
// character. It returns ErrInvalidAddress if the character is outside the
// reserved range 0x31..0x3F.
func AddressFromChar(c byte) (Address, error) {
	if c <= addrCharBase || c > addrCharBase+byte(MaxAddress) {
		return 0, fmt.Errorf("%w: char 0x%02X", ErrInvalidAddress, c)
	}

	return Address(c - addrCharBase), nil
}

// String returns a human-readable representation of the address.
func (a Address) String() string {
	if !a.IsValid() {
		return fmt.Sprintf("invalid(%d)", byte(a))
	}

	return fmt.Sprintf("%d", byte(a))
}
