package config

import "time"

// Config represents the complete configuration for bridgecfg.
type Config struct {
	Bridge     BridgeConfig     `mapstructure:"bridge" yaml:"bridge" toml:"bridge"`
	Editor     EditorConfig     `mapstructure:"editor" yaml:"editor" toml:"editor"`
	Journal    JournalConfig    `mapstructure:"journal" yaml:"journal" toml:"journal"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
}

// BridgeConfig controls how the bridge socket is reached.
type BridgeConfig struct {
	// SocketPath is the unix socket of the bridge discovery and parameter service.
	SocketPath string `mapstructure:"socket_path" yaml:"socket_path" toml:"socket_path" jsonschema:"description=Unix socket of the FSW bridge"`
	// PollIntervalMs is how often discovery is retried while disconnected.
	PollIntervalMs int `mapstructure:"poll_interval_ms" yaml:"poll_interval_ms" toml:"poll_interval_ms" jsonschema:"minimum=50"`
	// DiscoveryTimeoutMs bounds a single discovery attempt.
	DiscoveryTimeoutMs int `mapstructure:"discovery_timeout_ms" yaml:"discovery_timeout_ms" toml:"discovery_timeout_ms" jsonschema:"minimum=1"`
	// CallTimeoutMs bounds parameter set calls.
	CallTimeoutMs int `mapstructure:"call_timeout_ms" yaml:"call_timeout_ms" toml:"call_timeout_ms" jsonschema:"minimum=1"`
}

// PollInterval returns PollIntervalMs as a duration.
func (b BridgeConfig) PollInterval() time.Duration {
	return time.Duration(b.PollIntervalMs) * time.Millisecond
}

// DiscoveryTimeout returns DiscoveryTimeoutMs as a duration.
func (b BridgeConfig) DiscoveryTimeout() time.Duration {
	return time.Duration(b.DiscoveryTimeoutMs) * time.Millisecond
}

// CallTimeout returns CallTimeoutMs as a duration.
func (b BridgeConfig) CallTimeout() time.Duration {
	return time.Duration(b.CallTimeoutMs) * time.Millisecond
}

// EditorConfig controls editing behavior.
type EditorConfig struct {
	// LivePush is the initial state of the live push toggle.
	LivePush bool `mapstructure:"live_push" yaml:"live_push" toml:"live_push"`
	// ParameterNamespace is the mapping key holding a node's parameters.
	ParameterNamespace string `mapstructure:"parameter_namespace" yaml:"parameter_namespace" toml:"parameter_namespace"`
	// WatchFiles reports on-disk changes of the open file.
	WatchFiles bool `mapstructure:"watch_files" yaml:"watch_files" toml:"watch_files"`
	// ConfirmQuit asks before quitting with unsaved edits.
	ConfirmQuit bool `mapstructure:"confirm_quit" yaml:"confirm_quit" toml:"confirm_quit"`
}

// JournalConfig controls the push journal database.
type JournalConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled"`
	// Path of the SQLite database. Empty selects the XDG data directory.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
	// RetentionDays prunes older records at startup. Zero keeps everything.
	RetentionDays int `mapstructure:"retention_days" yaml:"retention_days" toml:"retention_days" jsonschema:"minimum=0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	// LogDir is where the editor writes its log file. Empty selects the XDG state directory.
	LogDir string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
}

// AppearanceConfig holds TUI appearance settings.
type AppearanceConfig struct {
	Palette Palette `mapstructure:"palette" yaml:"palette" toml:"palette"`
	// ShowIcons prefixes tree rows with kind icons.
	ShowIcons bool `mapstructure:"show_icons" yaml:"show_icons" toml:"show_icons"`
}

// Palette is the TUI color palette, as hex colors.
type Palette struct {
	Accent  string `mapstructure:"accent" yaml:"accent" toml:"accent"`
	Text    string `mapstructure:"text" yaml:"text" toml:"text"`
	Muted   string `mapstructure:"muted" yaml:"muted" toml:"muted"`
	Border  string `mapstructure:"border" yaml:"border" toml:"border"`
	Success string `mapstructure:"success" yaml:"success" toml:"success"`
	Warning string `mapstructure:"warning" yaml:"warning" toml:"warning"`
	Error   string `mapstructure:"error" yaml:"error" toml:"error"`
}
