package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrator_NoFile(t *testing.T) {
	m := NewMigrator(filepath.Join(t.TempDir(), "missing.toml"))
	result, err := m.CheckMigration()
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestMigrator_CompleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	result, err := NewMigrator(path).CheckMigration()
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestMigrator_Migrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[bridge]
socket_path = '/srv/fsw.sock'
retry_count = 3

[editor]
live_push = true
`), 0o644))

	m := NewMigrator(path)

	result, err := m.CheckMigration()
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.MissingKeys, "bridge.poll_interval_ms")
	assert.Contains(t, result.MissingKeys, "journal.enabled")
	assert.NotContains(t, result.MissingKeys, "bridge.socket_path")
	assert.Equal(t, []string{"bridge.retry_count"}, result.DeprecatedKeys)

	applied, err := m.Migrate()
	require.NoError(t, err)
	assert.Contains(t, applied, "journal.enabled")
	assert.Contains(t, applied, "(removed: bridge.retry_count)")

	result, err = m.CheckMigration()
	require.NoError(t, err)
	assert.Nil(t, result)

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, "/srv/fsw.sock", mgr.Get().Bridge.SocketPath)
	assert.True(t, mgr.Get().Editor.LivePush)
}

func TestMigrator_GetKeyInfo(t *testing.T) {
	m := NewMigrator("unused")

	info := m.GetKeyInfo("bridge.poll_interval_ms")
	assert.Equal(t, "int", info.Type)
	assert.Equal(t, "1000", info.DefaultValue)

	info = m.GetKeyInfo("journal.path")
	assert.Equal(t, `""`, info.DefaultValue)

	assert.Equal(t, "unknown", m.GetKeyInfo("nope").Type)
}
