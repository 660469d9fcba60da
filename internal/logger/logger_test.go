package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	assert.Contains(t, buf.String(), "[DEBUG]")
	assert.Contains(t, buf.String(), "test message arg")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Log().Debug().Str("path", "/reports").Msg("hidden")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Test Section")

	assert.Equal(t, "\n=== Test Section ===\n", buf.String())
}

func TestInfo(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("info message %d", 42)

	assert.Contains(t, buf.String(), "[INFO]")
	assert.Contains(t, buf.String(), "info message 42")
}

func TestWarn(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Warn("warning message")

	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "warning message")
}

func TestLog_StructuredFields(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Log().Debug().Str("path", "/reports").Int("attempt", 2).Msg("request sent")

	out := buf.String()
	assert.Contains(t, out, "request sent")
	assert.Contains(t, out, "path=/reports")
	assert.Contains(t, out, "attempt=2")
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	SetOutput(&bytes.Buffer{})

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			IsVerbose()
			Log()
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
