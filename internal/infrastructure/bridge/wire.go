package bridge

import (
	"fmt"

	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// Actions understood by the bridge.
const (
	ActionGetPluginInfo = "get_plugin_info"
	ActionSetParameters = "set_parameters"
	ActionSetParameter  = "set_parameter"
)

// Response is the envelope of every reply.
type Response struct {
	OK    bool       `cbor:"ok"`
	Error string     `cbor:"error,omitempty"`
	Data  RawMessage `cbor:"data,omitempty"`
}

// PluginInfoResponse is the data of a get_plugin_info reply.
type PluginInfoResponse struct {
	PluginName  string   `cbor:"plugin_name"`
	PackageName string   `cbor:"package_name,omitempty"`
	NodeName    string   `cbor:"node_name"`
	ConfigFiles []string `cbor:"config_files"`
}

// Parameter is a typed parameter on the wire. Exactly one value field
// matching Kind is set.
type Parameter struct {
	Name    string   `cbor:"name"`
	Kind    string   `cbor:"kind"`
	Integer *int64   `cbor:"integer,omitempty"`
	Double  *float64 `cbor:"double,omitempty"`
	Bool    *bool    `cbor:"bool,omitempty"`
	String  *string  `cbor:"string,omitempty"`
}

// ParameterResult is the per-parameter outcome on the wire.
type ParameterResult struct {
	Name       string `cbor:"name"`
	Successful bool   `cbor:"successful"`
	Reason     string `cbor:"reason,omitempty"`
}

// SetParametersRequest carries a bulk update.
type SetParametersRequest struct {
	Action     string      `cbor:"action"`
	Node       string      `cbor:"node"`
	Parameters []Parameter `cbor:"parameters"`
}

// SetParametersResponse is the data of a set_parameters reply.
type SetParametersResponse struct {
	Results []ParameterResult `cbor:"results"`
}

// SetParameterRequest carries a single update.
type SetParameterRequest struct {
	Action    string    `cbor:"action"`
	Node      string    `cbor:"node"`
	Parameter Parameter `cbor:"parameter"`
}

// EncodeParameter converts a domain parameter to its wire form.
func EncodeParameter(p entity.Parameter) Parameter {
	w := Parameter{Name: p.Name, Kind: string(p.Value.Kind)}
	switch p.Value.Kind {
	case entity.ParameterInteger:
		v := p.Value.Int
		w.Integer = &v
	case entity.ParameterDouble:
		v := p.Value.Double
		w.Double = &v
	case entity.ParameterBool:
		v := p.Value.Bool
		w.Bool = &v
	default:
		v := p.Value.Str
		w.Kind = string(entity.ParameterString)
		w.String = &v
	}
	return w
}

// DecodeParameter converts a wire parameter to its domain form.
func DecodeParameter(w Parameter) (entity.Parameter, error) {
	p := entity.Parameter{Name: w.Name}
	if w.Name == "" {
		return p, fmt.Errorf("parameter without name")
	}

	missing := func() error {
		return fmt.Errorf("parameter %q: kind %s without %s value", w.Name, w.Kind, w.Kind)
	}

	switch entity.ParameterKind(w.Kind) {
	case entity.ParameterInteger:
		if w.Integer == nil {
			return p, missing()
		}
		p.Value = entity.ParameterValue{Kind: entity.ParameterInteger, Int: *w.Integer}
	case entity.ParameterDouble:
		if w.Double == nil {
			return p, missing()
		}
		p.Value = entity.ParameterValue{Kind: entity.ParameterDouble, Double: *w.Double}
	case entity.ParameterBool:
		if w.Bool == nil {
			return p, missing()
		}
		p.Value = entity.ParameterValue{Kind: entity.ParameterBool, Bool: *w.Bool}
	case entity.ParameterString:
		if w.String == nil {
			return p, missing()
		}
		p.Value = entity.ParameterValue{Kind: entity.ParameterString, Str: *w.String}
	default:
		return p, fmt.Errorf("parameter %q: unknown kind %q", w.Name, w.Kind)
	}
	return p, nil
}

func decodeResult(w ParameterResult) entity.ParameterResult {
	return entity.ParameterResult{Name: w.Name, Successful: w.Successful, Reason: w.Reason}
}

func encodeResult(r entity.ParameterResult) ParameterResult {
	return ParameterResult{Name: r.Name, Successful: r.Successful, Reason: r.Reason}
}
