package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/domain/tree"
)

const indentWidth = 2

// TreeRenderer renders display tree rows.
type TreeRenderer struct {
	theme *Theme
}

// NewTreeRenderer creates a new tree renderer with the given theme.
func NewTreeRenderer(theme *Theme) *TreeRenderer {
	return &TreeRenderer{theme: theme}
}

// Row renders a single display node. Branches show their expansion state,
// leaves their value.
func (r *TreeRenderer) Row(n *tree.DisplayNode, selected bool) string {
	t := r.theme
	indent := strings.Repeat(" ", indentWidth*n.Depth)

	var marker, body string
	switch {
	case !n.Leaf:
		marker = t.Icon(IconCollapsed, PlainCollapsed)
		if n.Expanded {
			marker = t.Icon(IconExpanded, PlainExpanded)
		}
		body = t.TreeBranch.Render(n.Key)
	case n.Kind == entity.KindSequence:
		marker = t.Icon(IconSequence, PlainSequence)
		body = t.TreeKey.Render(n.Key) + t.Subtle.Render(": ") + t.Subtle.Render(n.Value)
	default:
		marker = t.Icon(IconLeaf, PlainLeaf)
		body = t.TreeKey.Render(n.Key) + t.Subtle.Render(": ") + t.TreeValue.Render(n.Value)
	}

	line := indent + t.Subtle.Render(marker) + " " + body
	if selected {
		return t.RowSelected.Render(t.Icon(IconCursor, PlainCursor)) + " " + line
	}
	return "  " + line
}

// Rows renders a window of height rows around the selected index.
func (r *TreeRenderer) Rows(rows []*tree.DisplayNode, selected, height int) string {
	if len(rows) == 0 {
		return r.theme.Subtle.Render("  (empty document)")
	}

	start, end := Window(len(rows), selected, height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.Row(rows[i], i == selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Render prints the whole projection of doc with every branch expanded.
func (r *TreeRenderer) Render(doc *entity.Document) string {
	root := tree.Build(doc)
	tree.SetExpandedAll(root, true)
	rows := tree.Visible(root)
	if len(rows) == 0 {
		return r.theme.Subtle.Render("(empty document)")
	}

	lines := make([]string, len(rows))
	for i, n := range rows {
		lines[i] = r.Row(n, false)
	}
	return strings.Join(lines, "\n")
}

// Window returns the [start, end) slice of total rows that keeps selected
// visible in a viewport of height rows.
func Window(total, selected, height int) (start, end int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start = selected - height/2
	if start < 0 {
		start = 0
	}
	end = start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}
