package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Migrator brings an existing config file up to date with the current
// defaults.
type Migrator struct {
	configFile   string
	defaultViper *viper.Viper
}

var _ port.ConfigMigrator = (*Migrator)(nil)

// NewMigrator creates a Migrator for configFile.
func NewMigrator(configFile string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{configFile: configFile, defaultViper: v}
}

// CheckMigration implements port.ConfigMigrator.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return nil, nil
	}

	userKeys, err := m.getUserConfigKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	defaults := m.defaultViper.AllKeys()
	defaultSet := make(map[string]bool, len(defaults))
	var missing []string
	for _, key := range defaults {
		defaultSet[key] = true
		if !userKeys[key] {
			missing = append(missing, key)
		}
	}

	var deprecated []string
	for key := range userKeys {
		if !defaultSet[key] {
			deprecated = append(deprecated, key)
		}
	}

	if len(missing) == 0 && len(deprecated) == 0 {
		return nil, nil
	}

	sort.Strings(missing)
	sort.Strings(deprecated)
	return &port.MigrationResult{
		MissingKeys:    missing,
		DeprecatedKeys: deprecated,
		ConfigFile:     m.configFile,
	}, nil
}

// Migrate implements port.ConfigMigrator. User values are kept.
func (m *Migrator) Migrate() ([]string, error) {
	result, err := m.CheckMigration()
	if err != nil || result == nil {
		return nil, err
	}

	userViper := viper.New()
	userViper.SetConfigFile(m.configFile)
	userViper.SetConfigType("toml")

	mgr := &Manager{viper: userViper}
	mgr.setDefaults()

	if err := userViper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := userViper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(result.MissingKeys)+len(result.DeprecatedKeys))
	applied = append(applied, result.MissingKeys...)
	for _, key := range result.DeprecatedKeys {
		applied = append(applied, fmt.Sprintf("(removed: %s)", key))
	}
	return applied, nil
}

// GetKeyInfo implements port.ConfigMigrator.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaultViper.Get(key)
	if value == nil {
		return port.KeyInfo{Key: key, Type: "unknown", DefaultValue: "unknown"}
	}
	return port.KeyInfo{
		Key:          key,
		Type:         fmt.Sprintf("%T", value),
		DefaultValue: formatValue(value),
	}
}

func formatValue(value any) string {
	if s, ok := value.(string); ok {
		if s == "" {
			return `""`
		}
		return s
	}
	return fmt.Sprintf("%v", value)
}

// getUserConfigKeys returns the dotted keys set in the user's file. Keys
// are lowercased the way viper reads them.
func (m *Migrator) getUserConfigKeys() (map[string]bool, error) {
	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]bool)
	flattenKeys(raw, "", keys)
	return keys, nil
}

func flattenKeys(data map[string]any, prefix string, keys map[string]bool) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flattenKeys(nested, key, keys)
			continue
		}
		keys[key] = true
	}
}
