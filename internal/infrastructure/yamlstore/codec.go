// Package yamlstore reads and writes configuration documents as YAML.
package yamlstore

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedDocument is returned for YAML whose top level is not a mapping.
var ErrUnsupportedDocument = errors.New("top-level YAML document must be a mapping")

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
	tagMap   = "!!map"
	tagSeq   = "!!seq"
	tagMerge = "!!merge"

	indent = 2
)

// Decode parses YAML into a document. An empty input yields an empty
// document.
func Decode(raw []byte) (*entity.Document, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(document.Content) == 0 || document.Content[0] == nil {
		return entity.NewDocument(nil), nil
	}

	root := document.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == tagNull {
		return entity.NewDocument(nil), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrUnsupportedDocument
	}

	n, err := fromYAML(root)
	if err != nil {
		return nil, err
	}
	return entity.NewDocument(n), nil
}

func fromYAML(n *yaml.Node) (*entity.Node, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return entity.NewScalarNode(entity.NullScalar()), nil
		}
		return fromYAML(n.Alias)
	case yaml.MappingNode:
		return mappingFromYAML(n)
	case yaml.SequenceNode:
		items := make([]*entity.Node, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return entity.NewSequence(items...), nil
	case yaml.ScalarNode:
		return entity.NewScalarNode(scalarFromYAML(n)), nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
	}
}

func mappingFromYAML(n *yaml.Node) (*entity.Node, error) {
	out := entity.NewMapping()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		// Merge keys copy the referenced mapping's entries in place.
		if key.ShortTag() == tagMerge {
			if err := mergeInto(out, value); err != nil {
				return nil, err
			}
			continue
		}

		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
		}
		child, err := fromYAML(value)
		if err != nil {
			return nil, err
		}
		out.Put(key.Value, child)
	}
	return out, nil
}

func mergeInto(out *entity.Node, value *yaml.Node) error {
	sources := []*yaml.Node{value}
	if value.Kind == yaml.SequenceNode {
		sources = value.Content
	}
	for _, src := range sources {
		merged, err := fromYAML(src)
		if err != nil {
			return err
		}
		if !merged.IsMapping() {
			return fmt.Errorf("line %d: merge value must be a mapping", src.Line)
		}
		for _, e := range merged.Entries() {
			if _, exists := out.Lookup(e.Key); !exists {
				out.Put(e.Key, e.Value)
			}
		}
	}
	return nil
}

func scalarFromYAML(n *yaml.Node) entity.Scalar {
	switch n.ShortTag() {
	case tagNull:
		return entity.NullScalar()
	case tagBool:
		var b bool
		if err := n.Decode(&b); err == nil {
			return entity.BoolScalar(b)
		}
	case tagInt:
		var i int64
		if err := n.Decode(&i); err == nil {
			return entity.IntScalar(i)
		}
		var f float64
		if err := n.Decode(&f); err == nil {
			return entity.FloatScalar(f)
		}
	case tagFloat:
		var f float64
		if err := n.Decode(&f); err == nil {
			return entity.FloatScalar(f)
		}
	}
	return entity.StringScalar(n.Value)
}

// Encode renders doc as block-style YAML in mapping insertion order.
func Encode(doc *entity.Document) ([]byte, error) {
	root := toYAML(doc.Root())
	document := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(document); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func toYAML(n *entity.Node) *yaml.Node {
	switch n.Kind() {
	case entity.KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap}
		for _, e := range n.Entries() {
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: e.Key},
				toYAML(e.Value),
			)
		}
		return out
	case entity.KindSequence:
		// Block style even for scalar lists; only empty sequences render as [].
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq}
		for _, item := range n.Items() {
			out.Content = append(out.Content, toYAML(item))
		}
		return out
	default:
		return scalarToYAML(n.Scalar())
	}
}

func scalarToYAML(s entity.Scalar) *yaml.Node {
	out := &yaml.Node{Kind: yaml.ScalarNode}
	switch s.Kind {
	case entity.ScalarNull:
		out.Tag, out.Value = tagNull, "null"
	case entity.ScalarBool:
		out.Tag, out.Value = tagBool, strconv.FormatBool(s.Bool)
	case entity.ScalarInt:
		out.Tag, out.Value = tagInt, strconv.FormatInt(s.Int, 10)
	case entity.ScalarFloat:
		out.Tag, out.Value = tagFloat, formatYAMLFloat(s.Float)
	default:
		out.Tag, out.Value = tagStr, s.Str
	}
	return out
}

func formatYAMLFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	default:
		return entity.FormatFloat(f)
	}
}
