package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	buf := &bytes.Buffer{}
	app := newApp()
	app.Writer = buf

	require.NoError(t, app.Run([]string{"binheap", "demo", "--count", "10", "--seed", "1"}))

	out := buf.String()
	assert.Contains(t, out, "== 0..40 (41) ==")
	assert.Contains(t, out, "== without 3 and the minimum (39) ==")
	assert.Contains(t, out, "== 80..0 (81) ==")
	assert.Contains(t, out, "== random (10) ==")
	assert.Contains(t, out, "== drained (0) ==")
}

func TestDrawio(t *testing.T) {
	out := filepath.Join(t.TempDir(), "heap.drawio")
	app := newApp()
	app.Writer = &bytes.Buffer{}

	require.NoError(t, app.Run([]string{"binheap", "--verbose", "drawio", "--count", "12", "--out", out}))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "<mxfile"))
	assert.Equal(t, 12, strings.Count(string(content), "vertex=\"1\"")-strings.Count(string(content), "connectable=\"0\""))
}
