package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogging(t *testing.T) {
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestProvideLogger_SuppressesDebugByDefault(t *testing.T) {
	resetLogging(t)
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	logger := ProvideLogger()
	logger.Debug("folder ensured")
	logger.Warn("template rendered with missing keys")

	assert.NotContains(t, buf.String(), "folder ensured")
	assert.Contains(t, buf.String(), "template rendered with missing keys")
}

func TestProvideLogger_LogsDebugWhenVerbose(t *testing.T) {
	resetLogging(t)
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	ProvideLogger().Debug("folder ensured")

	assert.True(t, IsVerbose())
	assert.Contains(t, buf.String(), "folder ensured")
	assert.Contains(t, buf.String(), "DEBUG")
}
