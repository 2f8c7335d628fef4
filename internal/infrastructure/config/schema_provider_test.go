package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaProvider_GetSchema(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()
	require.NotEmpty(t, keys)

	seen := make(map[string]bool)
	for _, k := range keys {
		assert.False(t, seen[k.Key], "duplicate key %s", k.Key)
		seen[k.Key] = true
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
	}

	// Every concrete viper key is documented, directly or through a wildcard.
	mgr := NewMigrator("unused")
	for _, key := range mgr.defaultViper.AllKeys() {
		if seen[key] {
			continue
		}
		parent := key[:strings.LastIndex(key, ".")]
		assert.True(t, seen[parent+".*"], "undocumented key %s", key)
	}
}

func TestSchemaProvider_JSONSchema(t *testing.T) {
	data, err := NewSchemaProvider().JSONSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaID, doc["$id"])

	raw := string(data)
	assert.Contains(t, raw, `"socket_path"`)
	assert.Contains(t, raw, `"poll_interval_ms"`)
	assert.Contains(t, raw, `"parameter_namespace"`)
}

func TestGenerateSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.schema.json")
	require.NoError(t, GenerateSchemaFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
