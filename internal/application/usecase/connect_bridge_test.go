package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	portmocks "github.com/bnema/bridgecfg/internal/application/port/mocks"
	"github.com/bnema/bridgecfg/internal/application/usecase"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func testPluginInfo() *entity.PluginInfo {
	return &entity.PluginInfo{
		PluginName: "fsw_telemetry.TelemetryPlugin",
		NodeName:   "fsw_bridge",
		ConfigFiles: []string{
			"/opt/fsw/share/fsw_telemetry/config/params.yaml",
			"/opt/fsw/share/fsw_telemetry/config/limits.yaml",
		},
	}
}

func TestConnectBridgeUseCase_Poll_ConnectsOnce(t *testing.T) {
	ctx := testContext()

	discovery := portmocks.NewMockPluginDiscovery(t)
	factory := portmocks.NewMockParameterClientFactory(t)
	client := portmocks.NewMockParameterClient(t)

	discovery.EXPECT().GetPluginInfo(mock.Anything).Return(testPluginInfo(), nil).Once()
	factory.EXPECT().NewParameterClient("fsw_bridge").Return(client).Once()

	uc := usecase.NewConnectBridgeUseCase(discovery, factory, time.Second)
	assert.Equal(t, entity.Disconnected, uc.State())

	out := uc.Poll(ctx)
	require.NotNil(t, out)
	assert.True(t, out.Changed)
	assert.Equal(t, entity.Connected, out.State)
	require.NotNil(t, out.Info)
	assert.Equal(t, "fsw_telemetry", out.Info.PackageName)
	assert.Equal(t, []entity.ConfigFile{
		{Name: "params.yaml", Path: "/opt/fsw/share/fsw_telemetry/config/params.yaml"},
		{Name: "limits.yaml", Path: "/opt/fsw/share/fsw_telemetry/config/limits.yaml"},
	}, out.Files)

	// Later ticks are no-ops: no discovery, no new clients.
	for i := 0; i < 3; i++ {
		again := uc.Poll(ctx)
		assert.False(t, again.Changed)
		assert.Equal(t, entity.Connected, again.State)
	}

	got, err := uc.Client()
	require.NoError(t, err)
	assert.Same(t, client, got)
}

func TestConnectBridgeUseCase_Poll_FailureStaysConnecting(t *testing.T) {
	ctx := testContext()

	discovery := portmocks.NewMockPluginDiscovery(t)
	factory := portmocks.NewMockParameterClientFactory(t)
	client := portmocks.NewMockParameterClient(t)

	discovery.EXPECT().GetPluginInfo(mock.Anything).Return(nil, errors.New("dial unix: no such file")).Twice()
	discovery.EXPECT().GetPluginInfo(mock.Anything).Return(testPluginInfo(), nil).Once()
	factory.EXPECT().NewParameterClient("fsw_bridge").Return(client).Once()

	uc := usecase.NewConnectBridgeUseCase(discovery, factory, time.Second)

	out := uc.Poll(ctx)
	assert.False(t, out.Changed)
	assert.Equal(t, entity.Connecting, out.State)
	assert.Nil(t, out.Info)

	_, err := uc.Client()
	require.ErrorIs(t, err, usecase.ErrNotConnected)

	out = uc.Poll(ctx)
	assert.Equal(t, entity.Connecting, out.State)

	out = uc.Poll(ctx)
	assert.True(t, out.Changed)
	assert.Equal(t, entity.Connected, out.State)
}

func TestConnectBridgeUseCase_Connect_AppliesTimeout(t *testing.T) {
	ctx := testContext()

	discovery := portmocks.NewMockPluginDiscovery(t)
	factory := portmocks.NewMockParameterClientFactory(t)

	discovery.EXPECT().GetPluginInfo(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*entity.PluginInfo, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok, "discovery must run under a deadline")
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	uc := usecase.NewConnectBridgeUseCase(discovery, factory, 50*time.Millisecond)

	out, err := uc.Connect(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, entity.Connecting, out.State)
}

func TestConnectBridgeUseCase_KeepsReportedPackageName(t *testing.T) {
	ctx := testContext()

	discovery := portmocks.NewMockPluginDiscovery(t)
	factory := portmocks.NewMockParameterClientFactory(t)
	client := portmocks.NewMockParameterClient(t)

	info := testPluginInfo()
	info.PackageName = "fsw_custom"
	discovery.EXPECT().GetPluginInfo(mock.Anything).Return(info, nil).Once()
	factory.EXPECT().NewParameterClient(mock.Anything).Return(client).Once()

	uc := usecase.NewConnectBridgeUseCase(discovery, factory, 0)
	out, err := uc.Connect(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fsw_custom", out.Info.PackageName)
	assert.Equal(t, "fsw_custom", uc.Info().PackageName)
}
