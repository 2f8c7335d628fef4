// Package tree projects a configuration document into a navigable display tree.
package tree

import (
	"sort"

	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// DisplayNode is one row of the display tree. Mapping keys become branches,
// everything else becomes a leaf carrying its display text.
type DisplayNode struct {
	Key      string
	Value    string
	Leaf     bool
	Kind     entity.NodeKind
	Scalar   entity.ScalarKind
	Depth    int
	Expanded bool
	Children []*DisplayNode

	parent *DisplayNode
}

// Parent returns the enclosing node, or nil for the root.
func (n *DisplayNode) Parent() *DisplayNode { return n.parent }

// IsRoot reports whether n is the synthetic document root.
func (n *DisplayNode) IsRoot() bool { return n.parent == nil }

// Build projects doc into a fresh tree. Children of every mapping are sorted
// by key. The root has an empty key and is always expanded; top-level
// entries start expanded, deeper branches collapsed.
func Build(doc *entity.Document) *DisplayNode {
	root := &DisplayNode{Kind: entity.KindMapping, Depth: -1, Expanded: true}
	if doc == nil {
		return root
	}
	addChildren(root, doc.Root())
	return root
}

func addChildren(parent *DisplayNode, n *entity.Node) {
	entries := append([]entity.Entry(nil), n.Entries()...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	parent.Children = make([]*DisplayNode, 0, len(entries))
	for _, e := range entries {
		child := &DisplayNode{
			Key:    e.Key,
			Kind:   e.Value.Kind(),
			Depth:  parent.Depth + 1,
			parent: parent,
		}
		if e.Value.IsMapping() {
			child.Expanded = child.Depth < 1
			addChildren(child, e.Value)
		} else {
			child.Leaf = true
			child.Value = e.Value.String()
			child.Scalar = e.Value.Scalar().Kind
		}
		parent.Children = append(parent.Children, child)
	}
}

// PathOf reconstructs the document path of n by walking to the root.
// The root yields an empty path.
func PathOf(n *DisplayNode) entity.Path {
	var keys []string
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		keys = append(keys, cur.Key)
	}
	path := make(entity.Path, len(keys))
	for i, k := range keys {
		path[len(keys)-1-i] = k
	}
	return path
}

// Leaves returns every leaf below root in display order.
func Leaves(root *DisplayNode) []*DisplayNode {
	var out []*DisplayNode
	var walk func(n *DisplayNode)
	walk = func(n *DisplayNode) {
		for _, c := range n.Children {
			if c.Leaf {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// Visible returns the rows reachable through expanded branches, depth first.
// The root itself is not included.
func Visible(root *DisplayNode) []*DisplayNode {
	var out []*DisplayNode
	if root == nil {
		return out
	}
	appendVisible(root, &out)
	return out
}

func appendVisible(n *DisplayNode, out *[]*DisplayNode) {
	if !n.Expanded {
		return
	}
	for _, c := range n.Children {
		*out = append(*out, c)
		appendVisible(c, out)
	}
}

// Find returns the node at path, or nil.
func Find(root *DisplayNode, path entity.Path) *DisplayNode {
	cur := root
	for _, key := range path {
		if cur == nil {
			return nil
		}
		var next *DisplayNode
		for _, c := range cur.Children {
			if c.Key == key {
				next = c
				break
			}
		}
		cur = next
	}
	return cur
}

// Reveal expands every ancestor of n so that it appears in Visible.
func Reveal(n *DisplayNode) {
	for cur := n.parent; cur != nil; cur = cur.parent {
		cur.Expanded = true
	}
}

// SetExpandedAll expands or collapses every branch below root. The root
// stays expanded.
func SetExpandedAll(root *DisplayNode, expanded bool) {
	var walk func(n *DisplayNode)
	walk = func(n *DisplayNode) {
		for _, c := range n.Children {
			if c.Leaf {
				continue
			}
			c.Expanded = expanded
			walk(c)
		}
	}
	if root == nil {
		return
	}
	root.Expanded = true
	walk(root)
}

// ExpandedPaths records which branches are expanded, keyed by dotted path.
// It is used to carry view state across a rebuild.
func ExpandedPaths(root *DisplayNode) map[string]bool {
	out := make(map[string]bool)
	var walk func(n *DisplayNode)
	walk = func(n *DisplayNode) {
		for _, c := range n.Children {
			if c.Leaf {
				continue
			}
			out[PathOf(c).String()] = c.Expanded
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// ApplyExpanded restores state captured by ExpandedPaths. Paths that no
// longer exist are ignored.
func ApplyExpanded(root *DisplayNode, state map[string]bool) {
	if len(state) == 0 || root == nil {
		return
	}
	var walk func(n *DisplayNode)
	walk = func(n *DisplayNode) {
		for _, c := range n.Children {
			if c.Leaf {
				continue
			}
			if exp, ok := state[PathOf(c).String()]; ok {
				c.Expanded = exp
			}
			walk(c)
		}
	}
	walk(root)
}
