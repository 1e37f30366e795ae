package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	t.Run("production is json at info", func(t *testing.T) {
		Init("production")

		assert.NotNil(t, L())
		assert.False(t, L().Core().Enabled(zapcore.DebugLevel))
		assert.True(t, L().Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("development logs debug", func(t *testing.T) {
		Init("development")

		assert.True(t, L().Core().Enabled(zapcore.DebugLevel))
	})
}

func TestL_InitializesLazily(t *testing.T) {
	log = nil
	lazyInit = sync.Once{}
	t.Setenv("APP_ENV", "production")

	l := L()

	assert.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	Sync()
}

func TestL_ConcurrentFirstUse(t *testing.T) {
	log = nil
	lazyInit = sync.Once{}
	t.Setenv("APP_ENV", "production")

	loggers := make(chan *zap.Logger, 8)
	for i := 0; i < cap(loggers); i++ {
		go func() { loggers <- L() }()
	}

	first := <-loggers
	assert.NotNil(t, first)
	for i := 1; i < cap(loggers); i++ {
		assert.Same(t, first, <-loggers)
	}
}
