package entity

// ConfigKeyInfo describes a single application configuration key.
type ConfigKeyInfo struct {
	// Key is the full dotted path, e.g. "bridge.socket_path".
	Key string `json:"key"`

	// Type is the Go type name ("string", "int", "bool").
	Type string `json:"type"`

	// Default is the default value as text.
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists accepted values of enum-like strings.
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints such as ">=50".
	Range string `json:"range,omitempty"`

	// Section groups related keys for display.
	Section string `json:"section"`

	// Env is the short environment override, when one exists.
	Env string `json:"env,omitempty"`
}
