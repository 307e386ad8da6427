package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	defer func() { Logger = zap.NewNop() }()

	require.NoError(t, Init("debug", "text"))
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))

	require.NoError(t, Init("warn", "json"))
	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zap.WarnLevel))
}

func TestInit_Invalid(t *testing.T) {
	assert.Error(t, Init("loud", "text"))
	assert.Error(t, Init("info", "xml"))
}
