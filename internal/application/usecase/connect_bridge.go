package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/logging"
)

// ConnectBridgeUseCase errors.
var (
	ErrNotConnected = errors.New("bridge not connected")
)

// DefaultDiscoveryTimeout bounds one discovery attempt.
const DefaultDiscoveryTimeout = time.Second

// ConnectBridgeUseCase drives the connection state machine:
// Disconnected -> Connecting -> Connected. Once connected it never
// re-discovers and parameter clients are built exactly once.
type ConnectBridgeUseCase struct {
	discovery port.PluginDiscovery
	factory   port.ParameterClientFactory
	timeout   time.Duration

	mu     sync.Mutex
	state  entity.ConnectionState
	info   *entity.PluginInfo
	files  []entity.ConfigFile
	client port.ParameterClient
}

// NewConnectBridgeUseCase creates a new ConnectBridgeUseCase.
func NewConnectBridgeUseCase(
	discovery port.PluginDiscovery,
	factory port.ParameterClientFactory,
	timeout time.Duration,
) *ConnectBridgeUseCase {
	if timeout <= 0 {
		timeout = DefaultDiscoveryTimeout
	}
	return &ConnectBridgeUseCase{
		discovery: discovery,
		factory:   factory,
		timeout:   timeout,
	}
}

// PollOutput reports the outcome of one poll.
type PollOutput struct {
	State entity.ConnectionState
	// Changed is true only for the poll that completed the connection.
	Changed bool
	Info    *entity.PluginInfo
	Files   []entity.ConfigFile
}

// Poll runs one timer tick. Failures are logged and deferred to the next
// tick, so Poll never returns an error.
func (uc *ConnectBridgeUseCase) Poll(ctx context.Context) *PollOutput {
	out, err := uc.Connect(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("bridge not available yet")
	}
	return out
}

// Connect performs one discovery attempt unless already connected.
func (uc *ConnectBridgeUseCase) Connect(ctx context.Context) (*PollOutput, error) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	if uc.state == entity.Connected {
		out := uc.outputLocked(false)
		uc.mu.Unlock()
		return out, nil
	}
	if uc.state == entity.Disconnected {
		uc.state = entity.Connecting
		log.Info().Msg("trying to connect to bridge")
	}
	uc.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	info, err := uc.discovery.GetPluginInfo(callCtx)
	if err != nil {
		return uc.snapshot(false), fmt.Errorf("discover plugin: %w", err)
	}
	if info == nil {
		return uc.snapshot(false), fmt.Errorf("discover plugin: empty response")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// A concurrent attempt may have won.
	if uc.state == entity.Connected {
		return uc.outputLocked(false), nil
	}

	resolved := *info
	resolved.PackageName = info.Package()
	resolved.ConfigFiles = append([]string(nil), info.ConfigFiles...)

	uc.info = &resolved
	uc.files = entity.ConfigFileList(resolved.ConfigFiles)
	if uc.client == nil {
		uc.client = uc.factory.NewParameterClient(resolved.NodeName)
	}
	uc.state = entity.Connected

	log.Info().
		Str("plugin", resolved.PluginName).
		Str("package", resolved.PackageName).
		Str("node", resolved.NodeName).
		Int("config_files", len(uc.files)).
		Msg("connected to bridge")

	return uc.outputLocked(true), nil
}

func (uc *ConnectBridgeUseCase) snapshot(changed bool) *PollOutput {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.outputLocked(changed)
}

func (uc *ConnectBridgeUseCase) outputLocked(changed bool) *PollOutput {
	out := &PollOutput{State: uc.state, Changed: changed}
	if uc.info != nil {
		info := *uc.info
		out.Info = &info
	}
	out.Files = append([]entity.ConfigFile(nil), uc.files...)
	return out
}

// State returns the current connection state.
func (uc *ConnectBridgeUseCase) State() entity.ConnectionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Info returns the discovered plugin identity, or nil before connection.
func (uc *ConnectBridgeUseCase) Info() *entity.PluginInfo {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.info == nil {
		return nil
	}
	info := *uc.info
	return &info
}

// Client returns the parameter client built on connection.
func (uc *ConnectBridgeUseCase) Client() (port.ParameterClient, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.state != entity.Connected || uc.client == nil {
		return nil, ErrNotConnected
	}
	return uc.client, nil
}
