package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// ParameterKind is the typed value category of a runtime parameter.
type ParameterKind string

const (
	ParameterInteger ParameterKind = "integer"
	ParameterDouble  ParameterKind = "double"
	ParameterBool    ParameterKind = "bool"
	ParameterString  ParameterKind = "string"
)

// ParameterValue is a typed runtime parameter value. Only the field matching
// Kind is meaningful.
type ParameterValue struct {
	Kind   ParameterKind
	Int    int64
	Double float64
	Bool   bool
	Str    string
}

// Coerce infers a typed value from raw edit text. Integer is tried first,
// then double, then a case-insensitive true/false, and anything else stays
// a string. Coerce never fails.
func Coerce(raw string) ParameterValue {
	text := strings.TrimSpace(raw)

	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ParameterValue{Kind: ParameterInteger, Int: i}
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return ParameterValue{Kind: ParameterDouble, Double: f}
	}
	switch strings.ToLower(text) {
	case "true":
		return ParameterValue{Kind: ParameterBool, Bool: true}
	case "false":
		return ParameterValue{Kind: ParameterBool, Bool: false}
	}
	return ParameterValue{Kind: ParameterString, Str: raw}
}

// ParameterFromNode converts a document leaf into a parameter value,
// keeping the type the document already carries. Mappings and sequences
// have no parameter representation.
func ParameterFromNode(n *Node) (ParameterValue, bool) {
	if !n.IsScalar() {
		return ParameterValue{}, false
	}
	s := n.Scalar()
	switch s.Kind {
	case ScalarInt:
		return ParameterValue{Kind: ParameterInteger, Int: s.Int}, true
	case ScalarFloat:
		return ParameterValue{Kind: ParameterDouble, Double: s.Float}, true
	case ScalarBool:
		return ParameterValue{Kind: ParameterBool, Bool: s.Bool}, true
	case ScalarString:
		return ParameterValue{Kind: ParameterString, Str: s.Str}, true
	default:
		return ParameterValue{Kind: ParameterString}, true
	}
}

// Scalar converts the value into the document representation.
func (v ParameterValue) Scalar() Scalar {
	switch v.Kind {
	case ParameterInteger:
		return IntScalar(v.Int)
	case ParameterDouble:
		return FloatScalar(v.Double)
	case ParameterBool:
		return BoolScalar(v.Bool)
	default:
		return StringScalar(v.Str)
	}
}

func (v ParameterValue) String() string {
	return v.Scalar().String()
}

// Parameter is a named runtime parameter. Name is the dotted path below
// the parameter namespace.
type Parameter struct {
	Name  string
	Value ParameterValue
}

func (p Parameter) String() string {
	return fmt.Sprintf("%s = %s (%s)", p.Name, p.Value, p.Value.Kind)
}

// ParameterResult is the per-parameter outcome reported by the bridge.
type ParameterResult struct {
	Name       string
	Successful bool
	Reason     string
}
