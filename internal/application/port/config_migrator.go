package port

// MigrationResult contains the result of a config migration check.
type MigrationResult struct {
	// MissingKeys exist in the defaults but not in the user config.
	MissingKeys []string
	// DeprecatedKeys exist in the user config but are no longer read.
	DeprecatedKeys []string
	// ConfigFile is the path to the user's config file.
	ConfigFile string
}

// KeyInfo contains metadata about a config key for display purposes.
type KeyInfo struct {
	// Key is the dot-notation key path (e.g., "editor.live_push").
	Key string
	// Type is the Go type of the value (e.g., "bool", "int", "string").
	Type string
	// DefaultValue is a string representation of the default value.
	DefaultValue string
}

// ConfigMigrator checks for and applies config migrations.
type ConfigMigrator interface {
	// CheckMigration reports keys missing from or unknown to the user config.
	// Returns nil if no migration is needed (config file doesn't exist or is complete).
	CheckMigration() (*MigrationResult, error)

	// Migrate rewrites the user's config file with missing default keys
	// added and deprecated keys dropped. Returns the applied changes.
	Migrate() ([]string, error)

	// GetKeyInfo returns detailed information about a config key.
	GetKeyInfo(key string) KeyInfo
}
