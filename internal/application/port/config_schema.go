package port

import "github.com/bnema/bridgecfg/internal/domain/entity"

// ConfigSchemaProvider describes the application configuration.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
	// JSONSchema returns the JSON Schema document of the config file.
	JSONSchema() ([]byte, error)
}
