package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory into a temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(base, "run"))
	return base
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "ros__parameters", mgr.viper.GetString("editor.parameter_namespace"))
	assert.Equal(t, 5000, mgr.viper.GetInt("bridge.call_timeout_ms"))
	assert.True(t, mgr.viper.GetBool("journal.enabled"))
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	base := isolateXDG(t)
	path := filepath.Join(base, "custom", "config.toml")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, path)
	assert.Equal(t, path, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(base, "run", "bridgecfg", "bridge.sock"), cfg.Bridge.SocketPath)
	assert.Equal(t, filepath.Join(base, "data", "bridgecfg", "journal.sqlite"), cfg.Journal.Path)
	assert.Equal(t, filepath.Join(base, "state", "bridgecfg", "logs"), cfg.Logging.LogDir)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	base := isolateXDG(t)
	path := filepath.Join(base, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[bridge]
socket_path = '/tmp/fsw.sock'
poll_interval_ms = 250

[editor]
live_push = true
parameter_namespace = ' params '

[logging]
level = 'WARNING'
`), 0o644))

	t.Setenv("BRIDGECFG_LOG_FORMAT", "json")
	t.Setenv("BRIDGECFG_EDITOR_WATCH_FILES", "false")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "/tmp/fsw.sock", cfg.Bridge.SocketPath)
	assert.Equal(t, 250, cfg.Bridge.PollIntervalMs)
	assert.Equal(t, 1000, cfg.Bridge.DiscoveryTimeoutMs)
	assert.True(t, cfg.Editor.LivePush)
	assert.False(t, cfg.Editor.WatchFiles)
	assert.Equal(t, "params", cfg.Editor.ParameterNamespace)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	base := isolateXDG(t)
	path := filepath.Join(base, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bridge]\npoll_interval_ms = 5\n"), 0o644))

	mgr, err := NewManager(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bridge.poll_interval_ms")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	base := isolateXDG(t)
	path := filepath.Join(base, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bridge\n"), 0o644))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.Error(t, mgr.Load())
}

func TestManager_Save(t *testing.T) {
	base := isolateXDG(t)
	path := filepath.Join(base, "config.toml")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Editor.LivePush = true
	cfg.Appearance.Palette.Accent = "#ff00ff"
	require.NoError(t, mgr.Save(cfg))

	assert.True(t, mgr.Get().Editor.LivePush)

	reloaded, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Get().Editor.LivePush)
	assert.Equal(t, "#ff00ff", reloaded.Get().Appearance.Palette.Accent)

	cfg.Appearance.Palette.Accent = "pink"
	require.Error(t, mgr.Save(cfg))
	require.Error(t, mgr.Save(nil))
}

func TestManager_GetBeforeLoad(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig().Editor, mgr.Get().Editor)
}

func TestNormalizeConfig(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Bridge.SocketPath = " ~/fsw.sock "
	cfg.Logging.Format = "JSON"
	cfg.Editor.ParameterNamespace = ""
	cfg.Appearance.Palette.Error = ""

	normalizeConfig(cfg)

	assert.Equal(t, filepath.Join(home, "fsw.sock"), cfg.Bridge.SocketPath)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "ros__parameters", cfg.Editor.ParameterNamespace)
	assert.Equal(t, DefaultPalette().Error, cfg.Appearance.Palette.Error)
}
