package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/invopop/jsonschema"
)

// Section names for grouping config keys.
const (
	SectionBridge     = "Bridge"
	SectionEditor     = "Editor"
	SectionJournal    = "Journal"
	SectionLogging    = "Logging"
	SectionAppearance = "Appearance"
)

const schemaID = "https://github.com/bnema/bridgecfg/config.schema.json"

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 24)
	keys = append(keys, p.getBridgeKeys(defaults)...)
	keys = append(keys, p.getEditorKeys(defaults)...)
	keys = append(keys, p.getJournalKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getBridgeKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "bridge.socket_path",
			Type:        "string",
			Default:     defaults.Bridge.SocketPath,
			Description: "Unix socket of the FSW bridge discovery and parameter service",
			Section:     SectionBridge,
			Env:         "BRIDGECFG_SOCKET",
		},
		{
			Key:         "bridge.poll_interval_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Bridge.PollIntervalMs),
			Description: "Discovery retry interval while disconnected",
			Range:       fmt.Sprintf(">=%d", minPollIntervalMs),
			Section:     SectionBridge,
		},
		{
			Key:         "bridge.discovery_timeout_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Bridge.DiscoveryTimeoutMs),
			Description: "Timeout of a single discovery request",
			Range:       ">0",
			Section:     SectionBridge,
		},
		{
			Key:         "bridge.call_timeout_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Bridge.CallTimeoutMs),
			Description: "Timeout of parameter set requests",
			Range:       ">0",
			Section:     SectionBridge,
		},
	}
}

func (*SchemaProvider) getEditorKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "editor.live_push",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Editor.LivePush),
			Description: "Push each edit to the running node (initial toggle state)",
			Section:     SectionEditor,
		},
		{
			Key:         "editor.parameter_namespace",
			Type:        "string",
			Default:     defaults.Editor.ParameterNamespace,
			Description: "Key under each node that holds its parameters",
			Section:     SectionEditor,
		},
		{
			Key:         "editor.watch_files",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Editor.WatchFiles),
			Description: "Report changes made to the open file by other programs",
			Section:     SectionEditor,
		},
		{
			Key:         "editor.confirm_quit",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Editor.ConfirmQuit),
			Description: "Ask before quitting with unsaved edits",
			Section:     SectionEditor,
		},
	}
}

func (*SchemaProvider) getJournalKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "journal.enabled",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Journal.Enabled),
			Description: "Record every parameter push in the journal database",
			Section:     SectionJournal,
		},
		{
			Key:         "journal.path",
			Type:        "string",
			Default:     "(XDG data dir)/journal.sqlite",
			Description: "Journal database path",
			Section:     SectionJournal,
		},
		{
			Key:         "journal.retention_days",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Journal.RetentionDays),
			Description: "Records older than this are pruned at startup (0 keeps all)",
			Range:       ">=0",
			Section:     SectionJournal,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
			Env:         "BRIDGECFG_LOG_LEVEL",
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
			Env:         "BRIDGECFG_LOG_FORMAT",
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "(XDG state dir)/logs",
			Description: "Directory of the editor log file",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.show_icons",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Appearance.ShowIcons),
			Description: "Prefix tree rows with value kind icons",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "TUI colors (accent, text, muted, border, success, warning, error)",
			Section:     SectionAppearance,
		},
	}
}

// JSONSchema reflects the JSON Schema of Config. Property names follow the
// TOML keys.
func (*SchemaProvider) JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:               "toml",
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = schemaID
	schema.Title = "bridgecfg configuration"
	schema.Description = "Configuration schema for bridgecfg, the FSW bridge configuration editor"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes the JSON schema next to the config file.
func GenerateSchemaFile(path string) error {
	data, err := NewSchemaProvider().JSONSchema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
