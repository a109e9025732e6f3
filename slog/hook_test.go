package slog_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/declutter"
	dechtml "github.com/fwojciec/declutter/html"
	decslog "github.com/fwojciec/declutter/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc, err := dechtml.ParseString(`<html><body><article><p>Some text for the hook.</p></article></body></html>`)
	require.NoError(t, err)
	body := dechtml.Find(doc, "body")
	require.NotNil(t, body)

	declutter.Extract(body, dechtml.NewDocument(), declutter.WithHook(decslog.PhaseLogger(logger)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "phase=filter")
	assert.Contains(t, lines[1], "phase=select")
	assert.Contains(t, lines[2], "phase=materialize")
	for _, line := range lines {
		assert.Contains(t, line, `msg="extract phase"`)
		assert.Contains(t, line, "duration=")
	}
}
