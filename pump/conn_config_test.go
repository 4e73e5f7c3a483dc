package pump

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-cavro/cavro"
	"github.com/arloliu/go-cavro/logger"
	"github.com/arloliu/go-cavro/transport"
)

func TestNewConnectionConfig_Defaults(t *testing.T) {
	cfg, err := NewConnectionConfig(1)
	require.NoError(t, err)

	assert.Equal(t, cavro.Address(1), cfg.Address())
	assert.Equal(t, cavro.Syringe1000uL, cfg.SyringeSize())
	assert.Nil(t, cfg.Endpoints())
	assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout())
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval())
	assert.Equal(t, DefaultWaitBudget, cfg.WaitBudget())
	assert.NotNil(t, cfg.Opener())
	assert.NotNil(t, cfg.GetLogger())
}

func TestNewConnectionConfig_WithOptions(t *testing.T) {
	opener := transport.NewMockOpener()
	log := logger.GetLogger()

	cfg, err := NewConnectionConfig(3,
		WithSyringeSize(cavro.Syringe250uL),
		WithOpener(opener),
		WithEndpoints("/dev/ttyUSB0", "/dev/ttyUSB1"),
		WithReadTimeout(2*time.Second),
		WithPollInterval(100*time.Millisecond),
		WithWaitBudget(30*time.Second),
		WithLogger(log),
	)
	require.NoError(t, err)

	assert.Equal(t, cavro.Address(3), cfg.Address())
	assert.Equal(t, cavro.Syringe250uL, cfg.SyringeSize())
	assert.Equal(t, opener, cfg.Opener())
	assert.Equal(t, []string{"/dev/ttyUSB0", "/dev/ttyUSB1"}, cfg.Endpoints())
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 30*time.Second, cfg.WaitBudget())
	assert.Equal(t, log, cfg.GetLogger())
}

func TestNewConnectionConfig_InvalidArgs(t *testing.T) {
	_, err := NewConnectionConfig(0)
	assert.ErrorIs(t, err, cavro.ErrInvalidAddress)

	_, err = NewConnectionConfig(16)
	assert.ErrorIs(t, err, cavro.ErrInvalidAddress)

	_, err = NewConnectionConfig(1, WithSyringeSize(123))
	assert.ErrorIs(t, err, cavro.ErrInvalidSyringeSize)

	_, err = NewConnectionConfig(1, WithOpener(nil))
	assert.Error(t, err)

	_, err = NewConnectionConfig(1, WithEndpoints())
	assert.Error(t, err)

	_, err = NewConnectionConfig(1, WithReadTimeout(0))
	assert.Error(t, err)

	_, err = NewConnectionConfig(1, WithPollInterval(-time.Second))
	assert.Error(t, err)

	_, err = NewConnectionConfig(1, WithWaitBudget(-time.Second))
	assert.Error(t, err)

	_, err = NewConnectionConfig(1, WithLogger(nil))
	assert.Error(t, err)
}
