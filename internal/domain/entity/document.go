package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Document model errors.
var (
	ErrNotFound     = errors.New("config file not found")
	ErrEmptyPath    = errors.New("empty document path")
	ErrPathNotFound = errors.New("path not found in document")
	ErrNotAMapping  = errors.New("path does not resolve to a mapping")
)

// PathSeparator joins path segments into parameter names.
const PathSeparator = "."

// Path is an ordered sequence of keys from the document root to a node.
type Path []string

// ParsePath splits a dotted path. An empty string yields an empty path.
func ParsePath(dotted string) Path {
	if dotted == "" {
		return Path{}
	}
	return Path(strings.Split(dotted, PathSeparator))
}

func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// Last returns the final key, or "" for the empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Parent returns the path without its final key.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p[:len(p)-1]
}

// Append returns a new path with key appended. The receiver is not modified.
func (p Path) Append(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, key)
}

// ScalarKind identifies the concrete type carried by a Scalar.
type ScalarKind int

const (
	ScalarNull ScalarKind = iota
	ScalarString
	ScalarInt
	ScalarFloat
	ScalarBool
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarInt:
		return "int"
	case ScalarFloat:
		return "float"
	case ScalarBool:
		return "bool"
	default:
		return "null"
	}
}

// Scalar is a leaf value of a configuration document.
type Scalar struct {
	Kind  ScalarKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

func StringScalar(s string) Scalar { return Scalar{Kind: ScalarString, Str: s} }
func IntScalar(i int64) Scalar { return Scalar{Kind: ScalarInt, Int: i} }
func FloatScalar(f float64) Scalar { return Scalar{Kind: ScalarFloat, Float: f} }
func BoolScalar(b bool) Scalar { return Scalar{Kind: ScalarBool, Bool: b} }
func NullScalar() Scalar { return Scalar{Kind: ScalarNull} }
func (s Scalar) IsNull() bool { return s.Kind == ScalarNull }
func (s Scalar) Equal(o Scalar) bool { return s == o }

// String returns the display text of the scalar.
func (s Scalar) String() string {
	switch s.Kind {
	case ScalarString:
		return s.Str
	case ScalarInt:
		return strconv.FormatInt(s.Int, 10)
	case ScalarFloat:
		return FormatFloat(s.Float)
	case ScalarBool:
		return strconv.FormatBool(s.Bool)
	default:
		return "null"
	}
}

// FormatFloat renders f so that it reads back as a float, never as an integer.
func FormatFloat(f float64) string {
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(out, ".eEnN") {
		return out
	}
	return out + ".0"
}

// NodeKind tags the variant held by a Node.
type NodeKind int

const (
	KindScalar NodeKind = iota
	KindMapping
	KindSequence
)

func (k NodeKind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// Entry is one key/value pair of a mapping node.
type Entry struct {
	Key   string
	Value *Node
}

// Node is a document value: a scalar, an ordered mapping of nodes, or a
// sequence of nodes. Sequences are leaves as far as addressing goes.
type Node struct {
	kind    NodeKind
	scalar  Scalar
	entries []Entry
	index   map[string]int
	items   []*Node
}

// NewScalarNode wraps a scalar.
func NewScalarNode(s Scalar) *Node {
	return &Node{kind: KindScalar, scalar: s}
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{kind: KindMapping, index: make(map[string]int)}
}

// NewSequence returns a sequence node holding items.
func NewSequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: items}
}

func (n *Node) Kind() NodeKind { return n.kind }
func (n *Node) IsMapping() bool { return n != nil && n.kind == KindMapping }
func (n *Node) IsSequence() bool { return n != nil && n.kind == KindSequence }
func (n *Node) IsScalar() bool { return n != nil && n.kind == KindScalar }
func (n *Node) Scalar() Scalar { return n.scalar }
func (n *Node) Items() []*Node { return n.items }
func (n *Node) Entries() []Entry { return n.entries }
func (n *Node) Len() int { return len(n.entries) }

// Keys returns mapping keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.Key
	}
	return keys
}

// Lookup returns the child stored under key.
func (n *Node) Lookup(key string) (*Node, bool) {
	if !n.IsMapping() {
		return nil, false
	}
	i, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.entries[i].Value, true
}

// Put stores v under key. An existing key keeps its position; a new key is
// appended. Put on a non-mapping node is a no-op.
func (n *Node) Put(key string, v *Node) {
	if !n.IsMapping() {
		return
	}
	if i, ok := n.index[key]; ok {
		n.entries[i].Value = v
		return
	}
	n.index[key] = len(n.entries)
	n.entries = append(n.entries, Entry{Key: key, Value: v})
}

// String returns the display text of a leaf node. Mappings render empty.
func (n *Node) String() string {
	switch n.kind {
	case KindScalar:
		return n.scalar.String()
	case KindSequence:
		parts := make([]string, len(n.items))
		for i, item := range n.items {
			if item.IsMapping() {
				parts[i] = "{...}"
				continue
			}
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// Clone returns a deep copy.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindMapping:
		out := NewMapping()
		for _, e := range n.entries {
			out.Put(e.Key, e.Value.Clone())
		}
		return out
	case KindSequence:
		items := make([]*Node, len(n.items))
		for i, item := range n.items {
			items[i] = item.Clone()
		}
		return NewSequence(items...)
	default:
		return NewScalarNode(n.scalar)
	}
}

// Equal reports structural equality, including mapping key order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case KindMapping:
		if len(n.entries) != len(o.entries) {
			return false
		}
		for i, e := range n.entries {
			if e.Key != o.entries[i].Key || !e.Value.Equal(o.entries[i].Value) {
				return false
			}
		}
		return true
	case KindSequence:
		if len(n.items) != len(o.items) {
			return false
		}
		for i := range n.items {
			if !n.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	default:
		return n.scalar.Equal(o.scalar)
	}
}

// Document is a parsed configuration file. Its root is always a mapping.
type Document struct {
	root   *Node
	loaded bool
}

// NewDocument wraps root. A nil root produces an empty mapping.
func NewDocument(root *Node) *Document {
	if root == nil {
		root = NewMapping()
	}
	return &Document{root: root, loaded: true}
}

// EmptyDocument returns the unset document used after a failed load.
func EmptyDocument() *Document {
	return &Document{root: NewMapping()}
}

func (d *Document) Root() *Node { return d.root }
func (d *Document) Loaded() bool { return d.loaded }

// Get walks path key by key through nested mappings. The empty path
// returns the root.
func (d *Document) Get(path Path) (*Node, error) {
	cur := d.root
	for i, key := range path {
		if !cur.IsMapping() {
			return nil, fmt.Errorf("%w: %s", ErrNotAMapping, path[:i])
		}
		next, ok := cur.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path[:i+1])
		}
		cur = next
	}
	return cur, nil
}

// Set walks all but the last key of path and assigns v at the final key.
// Intermediate mappings must already exist.
func (d *Document) Set(path Path, v *Node) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	parent, err := d.Get(path.Parent())
	if err != nil {
		return err
	}
	if !parent.IsMapping() {
		return fmt.Errorf("%w: %s", ErrNotAMapping, path.Parent())
	}
	parent.Put(path.Last(), v)
	return nil
}

// LeafCount returns the number of non-mapping values in the document.
func (d *Document) LeafCount() int {
	return countLeaves(d.root)
}

func countLeaves(n *Node) int {
	if !n.IsMapping() {
		return 1
	}
	total := 0
	for _, e := range n.entries {
		total += countLeaves(e.Value)
	}
	return total
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{root: d.root.Clone(), loaded: d.loaded}
}
