package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.TraceLevel, ParseLevel(" trace "))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel

	ctx := WithContext(context.Background(), NewWithWriter(cfg, &buf))
	ctx = WithComponent(ctx, "editor")
	ctx = WithFile(ctx, "/tmp/params.yaml")
	ctx = WithNode(ctx, "bridge_node")

	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"editor"`)
	assert.Contains(t, out, `"file":"/tmp/params.yaml"`)
	assert.Contains(t, out, `"node":"bridge_node"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	// zerolog falls back to a disabled logger; logging must not panic.
	FromContext(context.Background()).Info().Msg("dropped")
}

func TestNewWithFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, cleanup, err := NewWithFile("info", "json", dir)
	require.NoError(t, err)

	logger.Info().Str("k", "v").Msg("written")
	logger.Debug().Msg("filtered")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"k":"v"`)
	assert.NotContains(t, string(data), "filtered")
}

func TestFileRotator_Rotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.log")

	r, err := NewFileRotator(path, 16, 1)
	require.NoError(t, err)

	line := []byte(strings.Repeat("x", 10) + "\n")
	for i := 0; i < 3; i++ {
		_, err := r.Write(line)
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, line, current)
}
