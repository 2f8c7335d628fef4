package styles

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// JournalTableColumns returns columns for the push journal table.
func JournalTableColumns() []table.Column {
	return []table.Column{
		{Title: "When", Width: 10},
		{Title: "Mode", Width: 6},
		{Title: "Node", Width: 16},
		{Title: "Parameter", Width: 28},
		{Title: "Value", Width: 16},
		{Title: "Result", Width: 24},
	}
}

// JournalRow converts a push record to a table row.
func JournalRow(r *entity.PushRecord, now time.Time, relative func(t, now time.Time) string) table.Row {
	return table.Row{
		relative(r.PushedAt, now),
		string(r.Mode),
		r.Node,
		r.Parameter,
		r.Value,
		resultText(r),
	}
}

func resultText(r *entity.PushRecord) string {
	if r.Successful {
		return "ok"
	}
	if r.Reason == "" {
		return "rejected"
	}
	return "rejected: " + r.Reason
}

// RenderJournal renders push records as a static table for terminal output.
func (t *Theme) RenderJournal(records []*entity.PushRecord, now time.Time, relative func(t, now time.Time) string) string {
	if len(records) == 0 {
		return t.Subtle.Render("push journal is empty")
	}

	headers := make([]string, 0, len(JournalTableColumns()))
	for _, c := range JournalTableColumns() {
		headers = append(headers, c.Title)
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = JournalRow(r, now, relative)
	}

	const resultCol = 5
	tbl := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == ltable.HeaderRow:
				return style.Foreground(t.Accent).Bold(true)
			case col == resultCol && !records[row].Successful:
				return style.Foreground(t.Error)
			case col == resultCol:
				return style.Foreground(t.Success)
			default:
				return style.Foreground(t.Text)
			}
		})
	return tbl.String()
}
