package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardkit/guardkit/pkg/guard"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := guard.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 65536, cfg.MaxInputBytes)
		assert.True(t, cfg.LogRejections)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("GUARD_MAX_INPUT_BYTES", "1024")
		t.Setenv("GUARD_LOG_REJECTIONS", "false")

		cfg, err := guard.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 1024, cfg.MaxInputBytes)
		assert.False(t, cfg.LogRejections)
	})

	t.Run("rejects non-positive cap", func(t *testing.T) {
		t.Setenv("GUARD_MAX_INPUT_BYTES", "-1")

		_, err := guard.LoadConfig()
		assert.ErrorIs(t, err, guard.ErrInvalidConfig)
	})

	t.Run("rejects unparsable value", func(t *testing.T) {
		t.Setenv("GUARD_MAX_INPUT_BYTES", "not-a-number")

		_, err := guard.LoadConfig()
		assert.ErrorIs(t, err, guard.ErrParsingConfig)
	})
}
