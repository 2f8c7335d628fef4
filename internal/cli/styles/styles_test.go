package styles_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/cli/styles"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/infrastructure/config"
)

func plainTheme() *styles.Theme {
	cfg := config.DefaultConfig()
	cfg.Appearance.ShowIcons = false
	return styles.NewTheme(cfg)
}

func sampleDocument() *entity.Document {
	gains := entity.NewMapping()
	gains.Put("kp", entity.NewScalarNode(entity.FloatScalar(1.5)))

	params := entity.NewMapping()
	params.Put("rate", entity.NewScalarNode(entity.IntScalar(10)))
	params.Put("gains", gains)
	params.Put("channels", entity.NewSequence(
		entity.NewScalarNode(entity.StringScalar("imu")),
	))

	node := entity.NewMapping()
	node.Put("ros__parameters", params)

	root := entity.NewMapping()
	root.Put("fsw_bridge", node)
	return entity.NewDocument(root)
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name               string
		total, selected, h int
		wantStart, wantEnd int
	}{
		{"fits", 5, 2, 10, 0, 5},
		{"no height", 5, 2, 0, 0, 5},
		{"top", 20, 0, 5, 0, 5},
		{"middle", 20, 10, 5, 8, 13},
		{"bottom", 20, 19, 5, 15, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := styles.Window(tt.total, tt.selected, tt.h)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTreeRenderer_Render(t *testing.T) {
	out := styles.NewTreeRenderer(plainTheme()).Render(sampleDocument())

	assert.Contains(t, out, "fsw_bridge")
	assert.Contains(t, out, "rate: 10")
	assert.Contains(t, out, "kp: 1.5")
	assert.Contains(t, out, "# channels")
	assert.Less(t, strings.Index(out, "channels"), strings.Index(out, "gains"), "children are sorted")
}

func TestTreeRenderer_Empty(t *testing.T) {
	out := styles.NewTreeRenderer(plainTheme()).Render(entity.EmptyDocument())
	assert.Contains(t, out, "empty document")
}

func TestParamsRenderer(t *testing.T) {
	r := styles.NewParamsRenderer(plainTheme())

	params, skipped, err := usecase.CollectParameters(sampleDocument(), "")
	require.NoError(t, err)

	out := r.RenderParameters(params, skipped)
	assert.Contains(t, out, "gains.kp = 1.5 (double)")
	assert.Contains(t, out, "(integer)")
	assert.Contains(t, out, "channels skipped")

	out = r.RenderResults([]entity.ParameterResult{
		{Name: "rate", Successful: true},
		{Name: "gains.kp", Successful: false, Reason: "parameter is read-only"},
	})
	assert.Contains(t, out, "parameter is read-only")
	assert.Contains(t, out, "1/2 parameters accepted")
}

func TestParamsRenderer_PluginInfo(t *testing.T) {
	r := styles.NewParamsRenderer(plainTheme())

	out := r.RenderPluginInfo(&entity.PluginInfo{
		PluginName:  "fsw_telemetry.TelemetryPlugin",
		NodeName:    "fsw_bridge",
		ConfigFiles: []string{"/etc/fsw/params.yaml", `C:\fsw\limits.yaml`},
	})
	assert.Contains(t, out, "fsw_telemetry.TelemetryPlugin")
	assert.Contains(t, out, "fsw_telemetry\n")
	assert.Contains(t, out, "limits.yaml")
	assert.Contains(t, out, "/etc/fsw/params.yaml")
}

func TestTheme_RenderJournal(t *testing.T) {
	theme := plainTheme()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Contains(t, theme.RenderJournal(nil, now, usecase.RelativeTime), "empty")

	out := theme.RenderJournal([]*entity.PushRecord{
		{Mode: entity.PushModeSingle, Node: "fsw_bridge", Parameter: "rate", Value: "10", Successful: true, PushedAt: now.Add(-5 * time.Minute)},
		{Mode: entity.PushModeBulk, Node: "fsw_bridge", Parameter: "mode", Value: "fast", Reason: "read-only", PushedAt: now},
	}, now, usecase.RelativeTime)

	assert.Contains(t, out, "Parameter")
	assert.Contains(t, out, "5m ago")
	assert.Contains(t, out, "rejected: read-only")
}

func TestTheme_IconFallback(t *testing.T) {
	theme := plainTheme()
	assert.Equal(t, styles.PlainCheck, theme.Icon(styles.IconCheck, styles.PlainCheck))

	theme.ShowIcons = true
	assert.Equal(t, styles.IconCheck, theme.Icon(styles.IconCheck, styles.PlainCheck))
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(plainTheme())

	out := r.RenderConfigInfo("/home/u/.config/bridgecfg/config.toml", 2, 1)
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "2 new settings")
	assert.Contains(t, out, "1 settings are no longer used")

	out = r.RenderMissingKeys([]port.KeyInfo{{Key: "editor.live_push", Type: "bool", DefaultValue: "false"}})
	assert.Contains(t, out, "editor.live_push")
	assert.Contains(t, out, "Default: false")

	assert.Contains(t, r.RenderDeprecatedKeys([]string{"legacy.key"}), "legacy.key")
	assert.Contains(t, r.RenderMigrationSuccess(3, "/x/config.toml"), "Applied 3 changes to config.toml")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestConfigSchemaRenderer(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(plainTheme())
	keys := config.NewSchemaProvider().GetSchema()

	out := r.Render(keys)
	assert.Contains(t, out, config.SectionBridge)
	assert.Contains(t, out, "bridge.socket_path")
	assert.Contains(t, out, "Env: BRIDGECFG_SOCKET")

	js, err := r.RenderJSON(keys[:1])
	require.NoError(t, err)
	assert.Contains(t, js, `"key"`)
}
