package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, INFO)

	logger.Debug("hidden")
	logger.With("request", "abc").WithGroup("route").Info("route found", "steps", 4, "route", "a -> b")

	line := buf.String()
	assert.NotContains(t, line, "hidden")
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "INFO route found request=abc route.steps=4")
	assert.Contains(t, line, `route.route="a -> b"`)
}

func TestLogHandlerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, DEBUG)
	logger.Debug("building graph")
	assert.Contains(t, buf.String(), "DEBUG building graph")
}

func TestLogHandlerEscapesLineBreaks(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, INFO)

	logger.Info("GET /api/landmarks/x\n2026/01/01 00:00:00 ERROR forged", "path", "a\r\nb")

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, `INFO "GET /api/landmarks/x\n2026/01/01 00:00:00 ERROR forged"`)
	assert.Contains(t, out, `path="a\r\nb"`)
}
