package port

import (
	"context"

	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// PluginDiscovery queries the bridge for the identity of its plugin.
type PluginDiscovery interface {
	GetPluginInfo(ctx context.Context) (*entity.PluginInfo, error)
}

// ParameterClient pushes runtime parameters to one bridge node.
type ParameterClient interface {
	// Node returns the name of the node parameters are sent to.
	Node() string

	// SetParameters sends params in one request. Results follow the
	// order of params.
	SetParameters(ctx context.Context, params []entity.Parameter) ([]entity.ParameterResult, error)

	// SetParameter sends a single parameter.
	SetParameter(ctx context.Context, param entity.Parameter) (entity.ParameterResult, error)
}

// ParameterClientFactory creates parameter clients bound to a node.
type ParameterClientFactory interface {
	NewParameterClient(node string) ParameterClient
}
