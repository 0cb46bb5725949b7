package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cantophon/ctk"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	attestedStyle = cellStyle.Foreground(lipgloss.Color("#04B575"))
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// renderTableau draws one tableau: a title line, then one row per
// candidate with its frequency and violations. Attested candidates
// (non-zero frequency) are highlighted.
func renderTableau(t *ctk.Tableau, names []string, parsed bool) string {
	rows := t.Rows(parsed)
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, r.Fields()[1:])
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(append([]string{"candidate", "freq"}, names...)...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row].Freq != 0:
				return attestedStyle
			default:
				return cellStyle
			}
		})

	title := t.Input()
	if parsed {
		title = t.ParsedInput()
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), tbl.String())
}
