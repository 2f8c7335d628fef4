package config

import (
	"fmt"
	"regexp"
	"strings"
)

const minPollIntervalMs = 50

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateBridge(config)...)
	validationErrors = append(validationErrors, validateEditor(config)...)
	validationErrors = append(validationErrors, validateJournal(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePalette(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateBridge(config *Config) []string {
	var validationErrors []string
	if config.Bridge.SocketPath == "" {
		validationErrors = append(validationErrors, "bridge.socket_path must not be empty")
	}
	if config.Bridge.PollIntervalMs < minPollIntervalMs {
		validationErrors = append(validationErrors, fmt.Sprintf("bridge.poll_interval_ms must be at least %d", minPollIntervalMs))
	}
	if config.Bridge.DiscoveryTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "bridge.discovery_timeout_ms must be positive")
	}
	if config.Bridge.CallTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "bridge.call_timeout_ms must be positive")
	}
	return validationErrors
}

func validateEditor(config *Config) []string {
	if strings.Contains(config.Editor.ParameterNamespace, ".") {
		return []string{"editor.parameter_namespace must be a single key (no dots)"}
	}
	return nil
}

func validateJournal(config *Config) []string {
	if config.Journal.RetentionDays < 0 {
		return []string{"journal.retention_days must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "console", "json", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validatePalette(config *Config) []string {
	p := config.Appearance.Palette
	colors := []struct {
		key   string
		value string
	}{
		{"accent", p.Accent},
		{"text", p.Text},
		{"muted", p.Muted},
		{"border", p.Border},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
	}

	var validationErrors []string
	for _, c := range colors {
		if c.value != "" && !hexColor.MatchString(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"appearance.palette.%s must be a hex color like #a1b2c3 (got: %s)", c.key, c.value,
			))
		}
	}
	return validationErrors
}
