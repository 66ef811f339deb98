package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_IsNop(t *testing.T) {
	l := New()
	require.NotNil(t, l.Log)
	assert.False(t, l.Log.Core().Enabled(zap.ErrorLevel))
}

func TestInit(t *testing.T) {
	l := New()
	require.NoError(t, l.Init("warn"))
	assert.True(t, l.Log.Core().Enabled(zap.WarnLevel))
	assert.False(t, l.Log.Core().Enabled(zap.InfoLevel))

	assert.Error(t, New().Init("chatty"))
}
