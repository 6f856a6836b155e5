package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		level log.Level
	}){
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}

	for _, entry := range table {
		assert.Equal(entry.level, Level(entry.name), entry.name)
	}
}

func TestNewLoggerWithWriter(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(ENV_LOG_LEVEL, "warn")
	t.Setenv(ENV_LOG_PREFIX, "")

	buf := &bytes.Buffer{}
	lg := NewLoggerWithWriter(buf)

	assert.Equal(log.WarnLevel, lg.GetLevel())
	assert.Equal("opsolve", lg.GetPrefix())
	assert.False(IsDebug())

	lg.Info("hidden")
	lg.Warn("sample rejected")
	assert.NotContains(buf.String(), "hidden")
	assert.Contains(buf.String(), "sample rejected")
	assert.Contains(buf.String(), "opsolve")
}

func TestNewLoggerPrefix(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(ENV_LOG_LEVEL, "debug")
	t.Setenv(ENV_LOG_PREFIX, "day16")

	lg := NewLoggerWithWriter(&bytes.Buffer{})
	assert.Equal(log.DebugLevel, lg.GetLevel())
	assert.Equal("day16", lg.GetPrefix())
	assert.True(IsDebug())
}
