package bridge

import (
	"context"
	"fmt"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/logging"
)

type parameterClient struct {
	client *Client
	node   string
}

func (p *parameterClient) Node() string {
	return p.node
}

func (p *parameterClient) SetParameters(ctx context.Context, params []entity.Parameter) ([]entity.ParameterResult, error) {
	wire := make([]Parameter, len(params))
	for i, param := range params {
		wire[i] = EncodeParameter(param)
	}

	logging.FromContext(logging.WithNode(ctx, p.node)).Debug().
		Int("count", len(params)).
		Msg("sending parameters")

	var resp SetParametersResponse
	err := p.client.Call(ctx, ActionSetParameters, map[string]any{
		"node":       p.node,
		"parameters": wire,
	}, &resp)
	if err != nil {
		return nil, err
	}

	results := make([]entity.ParameterResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = decodeResult(r)
	}
	return results, nil
}

func (p *parameterClient) SetParameter(ctx context.Context, param entity.Parameter) (entity.ParameterResult, error) {
	var resp ParameterResult
	err := p.client.Call(ctx, ActionSetParameter, map[string]any{
		"node":      p.node,
		"parameter": EncodeParameter(param),
	}, &resp)
	if err != nil {
		return entity.ParameterResult{}, err
	}
	if resp.Name != "" && resp.Name != param.Name {
		return entity.ParameterResult{}, fmt.Errorf("bridge answered for %q, expected %q", resp.Name, param.Name)
	}
	result := decodeResult(resp)
	result.Name = param.Name
	return result, nil
}
