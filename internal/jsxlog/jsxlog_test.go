package jsxlog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestNewRespectsVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", slog.String("file", "a.jsx"))

	out := buf.String()
	assert.Assert(t, !strings.Contains(out, "hidden"))
	assert.Assert(t, strings.Contains(out, "shown"))
	assert.Assert(t, strings.Contains(out, "file=a.jsx"))
}

func TestNewVerboseEmitsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	logger.Debug("visible now")

	assert.Assert(t, strings.Contains(buf.String(), "visible now"))
}
