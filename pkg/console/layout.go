package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rkaminsk/trigger/pkg/styles"
	"github.com/rkaminsk/trigger/pkg/tty"
)

// Layout helpers compose multi-section screens such as the release plan
// shown before a production dispatch. On interactive terminals they render
// lipgloss boxes; otherwise they fall back to plain text.

// LayoutTitleBox renders a section title inside a box of the given width.
func LayoutTitleBox(title string, width int) string {
	if width <= 0 {
		width = 60
	}
	if !tty.IsStderrTerminal() {
		rule := strings.Repeat("─", width)
		return rule + "\n" + title + "\n" + rule
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorInfo).
		Width(width).
		Align(lipgloss.Center).
		Bold(true).
		Render(title)
}

// LayoutInfoSection renders a "label: value" line with an emphasized label.
func LayoutInfoSection(label, value string) string {
	if !tty.IsStderrTerminal() {
		return fmt.Sprintf("%s: %s", label, value)
	}
	return styles.Bold.Render(label+":") + " " + value
}

// LayoutEmphasisBox renders content inside a colored box to draw attention
// to warnings or irreversible actions.
func LayoutEmphasisBox(content string, color lipgloss.AdaptiveColor) string {
	if !tty.IsStderrTerminal() {
		return content
	}
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1).
		Bold(true).
		Render(content)
}

// LayoutJoinVertical stacks sections vertically, left aligned. Empty input
// renders as an empty string.
func LayoutJoinVertical(sections ...string) string {
	if len(sections) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
