package entity_test

import (
	"testing"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestPluginInfo_Package(t *testing.T) {
	info := entity.PluginInfo{PluginName: "fsw_telemetry.TelemetryPlugin"}
	assert.Equal(t, "fsw_telemetry", info.Package())

	info.PackageName = "explicit_pkg"
	assert.Equal(t, "explicit_pkg", info.Package())

	assert.Equal(t, "nodots", entity.PluginInfo{PluginName: "nodots"}.Package())
}

func TestConfigFileList(t *testing.T) {
	files := entity.ConfigFileList([]string{
		"/opt/share/a/params.yaml",
		"/opt/share/a/limits.yaml",
		"/opt/share/b/params.yaml",
	})

	assert.Equal(t, []entity.ConfigFile{
		{Name: "params.yaml", Path: "/opt/share/b/params.yaml"},
		{Name: "limits.yaml", Path: "/opt/share/a/limits.yaml"},
	}, files)

	assert.Empty(t, entity.ConfigFileList(nil))
}

func TestConnectionState_String(t *testing.T) {
	assert.Equal(t, "disconnected", entity.Disconnected.String())
	assert.Equal(t, "connecting", entity.Connecting.String())
	assert.Equal(t, "connected", entity.Connected.String())
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "params.yaml", entity.BaseName("/opt/share/params.yaml"))
	assert.Equal(t, "params.yaml", entity.BaseName(`C:\bridge\params.yaml`))
	assert.Equal(t, "cfg", entity.BaseName("/opt/cfg/"))
	assert.Equal(t, "plain.yaml", entity.BaseName("plain.yaml"))
	assert.Equal(t, "/", entity.BaseName("/"))
}
