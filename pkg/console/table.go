package console

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rkaminsk/trigger/pkg/styles"
)

// TableConfig describes a table rendered to the terminal or as JSON.
type TableConfig struct {
	Title     string
	Headers   []string
	Rows      [][]string
	ShowTotal bool
	TotalRow  []string
}

// RenderTable renders the table as aligned text columns. An empty config
// renders as an empty string.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 && len(config.Rows) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(config.Rows)+1)
	rows = append(rows, config.Rows...)
	if config.ShowTotal && len(config.TotalRow) > 0 {
		rows = append(rows, config.TotalRow)
	}

	widths := make([]int, len(config.Headers))
	for i, header := range config.Headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	if config.Title != "" {
		b.WriteString(styles.Bold.Render(config.Title))
		b.WriteString("\n\n")
	}

	if len(config.Headers) > 0 {
		cells := make([]string, len(config.Headers))
		for i, header := range config.Headers {
			cells[i] = styles.Bold.Render(pad(header, widths[i]))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")

		separators := make([]string, len(widths))
		for i, width := range widths {
			separators[i] = strings.Repeat("-", width)
		}
		b.WriteString(styles.Muted.Render(strings.Join(separators, "  ")))
		b.WriteString("\n")
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderTableAsJSON renders the table rows as a JSON array of objects keyed
// by the column headers. An empty config renders as "[]".
func RenderTableAsJSON(config TableConfig) (string, error) {
	if len(config.Headers) == 0 {
		return "[]", nil
	}

	items := make([]map[string]string, 0, len(config.Rows))
	for _, row := range config.Rows {
		item := make(map[string]string, len(config.Headers))
		for i, header := range config.Headers {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			item[header] = value
		}
		items = append(items, item)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func pad(cell string, width int) string {
	if gap := width - lipgloss.Width(cell); gap > 0 {
		return cell + strings.Repeat(" ", gap)
	}
	return cell
}
