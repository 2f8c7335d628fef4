package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	explicitFile   string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager. configFile overrides the
// XDG location when non-empty.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
	}

	// BRIDGECFG_BRIDGE_SOCKET_PATH, BRIDGECFG_EDITOR_LIVE_PUSH, ...
	v.SetEnvPrefix("BRIDGECFG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names for the settings people override most.
	bindings := map[string][]string{
		"bridge.socket_path": {"BRIDGECFG_SOCKET", "BRIDGECFG_BRIDGE_SOCKET_PATH"},
		"logging.level":      {"BRIDGECFG_LOG_LEVEL", "BRIDGECFG_LOGGING_LEVEL"},
		"logging.format":     {"BRIDGECFG_LOG_FORMAT", "BRIDGECFG_LOGGING_FORMAT"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", envs[0], err)
		}
	}

	return &Manager{
		viper:        v,
		explicitFile: configFile,
		callbacks:    make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.explicitFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configPath(),
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, normalizes and validates viper's state into m.config.
// Must be called with the lock held for write.
func (m *Manager) decode() error {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configPath(),
			err,
		)
	}
	if err := fillPaths(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.explicitFile != "" {
		return m.explicitFile
	}
	path, _ := GetConfigFile()
	return path
}

// fillPaths resolves the XDG defaults of path settings left empty.
func fillPaths(cfg *Config) error {
	if cfg.Journal.Path == "" {
		path, err := GetJournalFile()
		if err != nil {
			return fmt.Errorf("failed to get journal path: %w", err)
		}
		cfg.Journal.Path = path
	}
	if cfg.Logging.LogDir == "" {
		dir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		cfg.Logging.LogDir = dir
	}
	if strings.TrimSpace(cfg.Bridge.SocketPath) == "" {
		cfg.Bridge.SocketPath = DefaultSocketPath()
	}
	return nil
}

func normalizeConfig(cfg *Config) {
	cfg.Bridge.SocketPath = expandHome(strings.TrimSpace(cfg.Bridge.SocketPath))
	cfg.Journal.Path = expandHome(strings.TrimSpace(cfg.Journal.Path))
	cfg.Logging.LogDir = expandHome(strings.TrimSpace(cfg.Logging.LogDir))

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "warning" {
		cfg.Logging.Level = "warn"
	}
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	cfg.Editor.ParameterNamespace = strings.TrimSpace(cfg.Editor.ParameterNamespace)
	if cfg.Editor.ParameterNamespace == "" {
		cfg.Editor.ParameterNamespace = defaultParameterNamespace
	}

	defaults := DefaultPalette()
	fillColor(&cfg.Appearance.Palette.Accent, defaults.Accent)
	fillColor(&cfg.Appearance.Palette.Text, defaults.Text)
	fillColor(&cfg.Appearance.Palette.Muted, defaults.Muted)
	fillColor(&cfg.Appearance.Palette.Border, defaults.Border)
	fillColor(&cfg.Appearance.Palette.Success, defaults.Success)
	fillColor(&cfg.Appearance.Palette.Warning, defaults.Warning)
	fillColor(&cfg.Appearance.Palette.Error, defaults.Error)
}

func fillColor(c *string, fallback string) {
	*c = strings.TrimSpace(*c)
	if *c == "" {
		*c = fallback
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.configPath()
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
		saved := *cfg
		m.config = &saved
		return nil
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to re-read config after save: %w", err)
	}
	return m.decode()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configPath()
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := m.configPath()

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setBridgeDefaults(defaults)
	m.setEditorDefaults(defaults)
	m.setJournalDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setBridgeDefaults(defaults *Config) {
	m.viper.SetDefault("bridge.socket_path", defaults.Bridge.SocketPath)
	m.viper.SetDefault("bridge.poll_interval_ms", defaults.Bridge.PollIntervalMs)
	m.viper.SetDefault("bridge.discovery_timeout_ms", defaults.Bridge.DiscoveryTimeoutMs)
	m.viper.SetDefault("bridge.call_timeout_ms", defaults.Bridge.CallTimeoutMs)
}

func (m *Manager) setEditorDefaults(defaults *Config) {
	m.viper.SetDefault("editor.live_push", defaults.Editor.LivePush)
	m.viper.SetDefault("editor.parameter_namespace", defaults.Editor.ParameterNamespace)
	m.viper.SetDefault("editor.watch_files", defaults.Editor.WatchFiles)
	m.viper.SetDefault("editor.confirm_quit", defaults.Editor.ConfirmQuit)
}

func (m *Manager) setJournalDefaults(defaults *Config) {
	m.viper.SetDefault("journal.enabled", defaults.Journal.Enabled)
	m.viper.SetDefault("journal.path", defaults.Journal.Path)
	m.viper.SetDefault("journal.retention_days", defaults.Journal.RetentionDays)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.show_icons", defaults.Appearance.ShowIcons)
	m.viper.SetDefault("appearance.palette.accent", defaults.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.text", defaults.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.border", defaults.Appearance.Palette.Border)
	m.viper.SetDefault("appearance.palette.success", defaults.Appearance.Palette.Success)
	m.viper.SetDefault("appearance.palette.warning", defaults.Appearance.Palette.Warning)
	m.viper.SetDefault("appearance.palette.error", defaults.Appearance.Palette.Error)
}
