package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("development env", func(t *testing.T) {
		l, err := NewLogger("local", "")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("prod env defaults to info", func(t *testing.T) {
		l, err := NewLogger("prod", "")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("level override", func(t *testing.T) {
		l, err := NewLogger("local", "warn")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("unknown env", func(t *testing.T) {
		_, err := NewLogger("staging", "")
		assert.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := NewLogger("local", "loud")
		assert.Error(t, err)
	})
}

func TestFromContext(t *testing.T) {
	l := zap.NewExample()
	fallback := zap.NewNop()

	assert.Same(t, l, FromContext(ContextWithLogger(context.Background(), l), fallback))
	assert.Same(t, fallback, FromContext(context.Background(), fallback))
	assert.NotNil(t, FromContext(context.Background(), nil))
}
