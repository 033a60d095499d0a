package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/bivariate"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func cell(c bivariate.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}

// previewGrid draws a swatch with axis b increasing upwards under its
// title. The title keeps its own line so long names never wrap.
func previewGrid(title string, g bivariate.Grid) string {
	rows := make([]string, len(g))
	for i, row := range g {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(cell(c))
		}
		rows[len(g)-1-i] = b.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		append([]string{titleStyle.Render(title)}, rows...)...)
}

// previewSwatches lays colours out in rows of width cells.
func previewSwatches(colors []bivariate.Color, width int) string {
	var rows []string
	for start := 0; start < len(colors); start += width {
		var b strings.Builder
		for _, c := range colors[start:min(start+width, len(colors))] {
			b.WriteString(cell(c))
		}
		rows = append(rows, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
