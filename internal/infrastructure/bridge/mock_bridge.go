package bridge

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/logging"
)

//go:generate mockgen -source=mock_bridge.go -destination=mocks/mock_parameter_store.go -package=mock_bridge ParameterStore

// ParameterStore applies parameter updates for the mock bridge.
type ParameterStore interface {
	Apply(node string, p entity.Parameter) entity.ParameterResult
}

// MockBridge is a stand-in for the flight software bridge. It answers
// discovery with a fixed plugin identity and forwards parameter updates
// to a ParameterStore.
type MockBridge struct {
	info   entity.PluginInfo
	store  ParameterStore
	server *SocketServer
}

// NewMockBridge creates a mock bridge listening on socketPath.
func NewMockBridge(socketPath string, info entity.PluginInfo, store ParameterStore) *MockBridge {
	b := &MockBridge{
		info:   info,
		store:  store,
		server: NewSocketServer(socketPath),
	}
	b.server.Handle(ActionGetPluginInfo, b.handlePluginInfo)
	b.server.Handle(ActionSetParameters, b.handleSetParameters)
	b.server.Handle(ActionSetParameter, b.handleSetParameter)
	return b
}

// Serve blocks until ctx is cancelled.
func (b *MockBridge) Serve(ctx context.Context) error {
	return b.server.Serve(ctx)
}

func (b *MockBridge) handlePluginInfo(context.Context, []byte) (any, error) {
	return PluginInfoResponse{
		PluginName:  b.info.PluginName,
		PackageName: b.info.PackageName,
		NodeName:    b.info.NodeName,
		ConfigFiles: b.info.ConfigFiles,
	}, nil
}

func (b *MockBridge) handleSetParameters(ctx context.Context, raw []byte) (any, error) {
	var req SetParametersRequest
	if err := unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("invalid set_parameters request: %w", err)
	}
	if err := b.checkNode(req.Node); err != nil {
		return nil, err
	}

	resp := SetParametersResponse{Results: make([]ParameterResult, 0, len(req.Parameters))}
	for _, w := range req.Parameters {
		resp.Results = append(resp.Results, encodeResult(b.apply(ctx, req.Node, w)))
	}
	return resp, nil
}

func (b *MockBridge) handleSetParameter(ctx context.Context, raw []byte) (any, error) {
	var req SetParameterRequest
	if err := unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("invalid set_parameter request: %w", err)
	}
	if err := b.checkNode(req.Node); err != nil {
		return nil, err
	}
	return encodeResult(b.apply(ctx, req.Node, req.Parameter)), nil
}

func (b *MockBridge) checkNode(node string) error {
	if node != b.info.NodeName {
		return fmt.Errorf("unknown node %q", node)
	}
	return nil
}

func (b *MockBridge) apply(ctx context.Context, node string, w Parameter) entity.ParameterResult {
	p, err := DecodeParameter(w)
	if err != nil {
		return entity.ParameterResult{Name: w.Name, Reason: err.Error()}
	}
	result := b.store.Apply(node, p)
	result.Name = p.Name
	logging.FromContext(logging.WithNode(ctx, node)).Info().
		Str("parameter", p.Name).
		Str("value", p.Value.String()).
		Bool("successful", result.Successful).
		Str("reason", result.Reason).
		Msg("parameter update")
	return result
}

// MemoryParameterStore keeps parameters in memory. Declared parameters keep
// their kind; undeclared names are accepted and declared on first set.
type MemoryParameterStore struct {
	mu       sync.Mutex
	values   map[string]entity.ParameterValue
	readOnly map[string]bool
}

// NewMemoryParameterStore creates an empty store.
func NewMemoryParameterStore() *MemoryParameterStore {
	return &MemoryParameterStore{
		values:   make(map[string]entity.ParameterValue),
		readOnly: make(map[string]bool),
	}
}

func storeKey(node, name string) string {
	return node + "/" + name
}

// Declare sets an initial value for node/name.
func (s *MemoryParameterStore) Declare(node string, p entity.Parameter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[storeKey(node, p.Name)] = p.Value
}

// SetReadOnly makes node/name reject updates.
func (s *MemoryParameterStore) SetReadOnly(node, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readOnly[storeKey(node, name)] = true
}

// Apply implements ParameterStore.
func (s *MemoryParameterStore) Apply(node string, p entity.Parameter) entity.ParameterResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storeKey(node, p.Name)
	if s.readOnly[key] {
		return entity.ParameterResult{Name: p.Name, Reason: "parameter is read-only"}
	}
	if current, ok := s.values[key]; ok && current.Kind != p.Value.Kind {
		return entity.ParameterResult{
			Name:   p.Name,
			Reason: fmt.Sprintf("wrong parameter type, expected %s got %s", current.Kind, p.Value.Kind),
		}
	}
	s.values[key] = p.Value
	return entity.ParameterResult{Name: p.Name, Successful: true}
}

// Get returns the current value of node/name.
func (s *MemoryParameterStore) Get(node, name string) (entity.ParameterValue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[storeKey(node, name)]
	return v, ok
}

// Names returns the declared parameter names of node, sorted.
func (s *MemoryParameterStore) Names(node string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := node + "/"
	var names []string
	for key := range s.values {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			names = append(names, key[len(prefix):])
		}
	}
	sort.Strings(names)
	return names
}
