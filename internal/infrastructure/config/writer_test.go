package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Bridge.SocketPath = "/run/fsw/bridge.sock"
	require.NoError(t, WriteConfigOrdered(cfg, configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[appearance]",
		"[appearance.palette]",
		"[bridge]",
		"[editor]",
		"[journal]",
		"[logging]",
	}, sectionHeaders(string(content)))

	// The file decodes back to the same values.
	var back Config
	require.NoError(t, toml.Unmarshal(content, &back))
	assert.Equal(t, *cfg, back)
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[logging]
level = 'info'

[bridge]
socket_path = '/tmp/b.sock'

[logging.extra]
a = 1

[appearance.palette]
accent = '#000'
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{
		"[appearance.palette]",
		"[bridge]",
		"[logging]",
		"[logging.extra]",
	}, sectionHeaders(result))
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n"))
	assert.True(t, strings.HasSuffix(result, "a = 1\n"))
	assert.NotContains(t, result, "\n\n\n")
}
