package config

// Default configuration constants
const (
	// Bridge defaults
	defaultPollIntervalMs     = 1000
	defaultDiscoveryTimeoutMs = 1000
	defaultCallTimeoutMs      = 5000

	// Editor defaults
	defaultParameterNamespace = "ros__parameters"

	// Journal defaults
	defaultJournalRetentionDays = 90

	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Bridge: BridgeConfig{
			SocketPath:         DefaultSocketPath(),
			PollIntervalMs:     defaultPollIntervalMs,
			DiscoveryTimeoutMs: defaultDiscoveryTimeoutMs,
			CallTimeoutMs:      defaultCallTimeoutMs,
		},
		Editor: EditorConfig{
			LivePush:           false,
			ParameterNamespace: defaultParameterNamespace,
			WatchFiles:         true,
			ConfirmQuit:        true,
		},
		Journal: JournalConfig{
			Enabled:       true,
			RetentionDays: defaultJournalRetentionDays,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Appearance: AppearanceConfig{
			Palette:   DefaultPalette(),
			ShowIcons: true,
		},
	}
}

// DefaultPalette returns the default TUI colors.
func DefaultPalette() Palette {
	return Palette{
		Accent:  "#7aa2f7",
		Text:    "#c0caf5",
		Muted:   "#565f89",
		Border:  "#3b4261",
		Success: "#9ece6a",
		Warning: "#e0af68",
		Error:   "#f7768e",
	}
}
