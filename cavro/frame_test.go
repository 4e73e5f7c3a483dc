package cavro

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFrame_Exact(t *testing.T) {
	tests := []struct {
		addr Address
		cmd  Command
		want string
	}{
		{1, StatusQuery(), "/1Q\r"},
		{1, SetSpeed(12), "/1S12R\r"},
		{2, MoveAbsolute(500), "/2A500R\r"},
		{3, Initialize(), "/3Z0,0,0R\r"},
		{4, SetValve(ValvePosition2), "/4I2R\r"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, []byte(tt.want), EncodeFrame(tt.addr, tt.cmd))
		})
	}

	// Address 15 encodes as 0x3F ('?'); spelled out byte-wise to avoid
	// ambiguity with the "?6" command body.
	frame := EncodeFrame(15, ValveQuery())
	assert.Equal(t, []byte{'/', 0x3F, '?', '6', '\r'}, frame)
}

func TestEncodeFrame_RoundTrip(t *testing.T) {
	cmds := []Command{
		StatusQuery(),
		Initialize(),
		SetSpeed(40),
		MoveAbsolute(1500),
		ValveQuery(),
		SetValve(ValvePosition3),
	}

	for addr := Address(1); addr <= MaxAddress; addr++ {
		for _, cmd := range cmds {
			t.Run(fmt.Sprintf("addr_%d_%s", addr, cmd.Body()), func(t *testing.T) {
				frame := EncodeFrame(addr, cmd)

				gotAddr, gotBody, err := ParseFrame(frame)
				require.NoError(t, err)
				assert.Equal(t, addr, gotAddr)
				assert.Equal(t, cmd.Body(), gotBody)
			})
		}
	}
}

func TestParseFrame_Errors(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
	}{
		{"empty", nil},
		{"too short", []byte{'/', '1'}},
		{"missing start", []byte("11QR\r")},
		{"missing end", []byte("/1Q")},
		{"address below range", []byte{'/', 0x30, 'Q', '\r'}},
		{"address above range", []byte{'/', 0x40, 'Q', '\r'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseFrame(tt.frame)
			assert.Error(t, err)
		})
	}
}

func TestAddress_CharMapping(t *testing.T) {
	// The 15 valid addresses map injectively onto 0x31..0x3F.
	seen := make(map[byte]bool)
	for addr := Address(1); addr <= MaxAddress; addr++ {
		require.True(t, addr.IsValid())

		c := addr.Char()
		assert.GreaterOrEqual(t, c, byte(0x31))
		assert.LessOrEqual(t, c, byte(0x3F))
		assert.False(t, seen[c], "duplicate wire char 0x%02X", c)
		seen[c] = true

		back, err := AddressFromChar(c)
		require.NoError(t, err)
		assert.Equal(t, addr, back)
	}

	assert.False(t, Address(0).IsValid())
	assert.False(t, Address(16).IsValid())
}
