package cavro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Bodies(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"status query", StatusQuery(), "Q"},
		{"initialize", Initialize(), "Z0,0,0R"},
		{"set speed", SetSpeed(12), "S12R"},
		{"set speed zero", SetSpeed(0), "S0R"},
		{"set speed max", SetSpeed(40), "S40R"},
		{"move absolute", MoveAbsolute(500), "A500R"},
		{"move absolute full stroke", MoveAbsolute(3000), "A3000R"},
		{"valve query", ValveQuery(), "?6"},
		{"set valve 1", SetValve(ValvePosition1), "I1R"},
		{"set valve 3", SetValve(ValvePosition3), "I3R"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.Body())
		})
	}
}

func TestCommand_Clamping(t *testing.T) {
	// Out-of-range arguments are capped, not rejected.
	assert.Equal(t, "S40R", SetSpeed(55).Body())
	assert.Equal(t, "S40R", SetSpeed(1000).Body())
	assert.Equal(t, "S0R", SetSpeed(-5).Body())

	assert.Equal(t, "A3000R", MoveAbsolute(5000).Body())
	assert.Equal(t, "A0R", MoveAbsolute(-1).Body())
}
