// Package console renders user-facing terminal output: status messages,
// file diagnostics, tables and progress indication. All helpers return or
// write plain text when the target stream is not an interactive terminal,
// so command output stays machine-readable in pipes and CI logs.
package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkaminsk/trigger/pkg/styles"
)

// FormatErrorMessage formats an error line with the ✗ icon.
func FormatErrorMessage(message string) string {
	return styles.Error.Render("✗ " + message)
}

// FormatSuccessMessage formats a success line with the ✓ icon.
func FormatSuccessMessage(message string) string {
	return styles.Success.Render("✓ " + message)
}

// FormatInfoMessage formats an informational line with the ℹ icon.
func FormatInfoMessage(message string) string {
	return styles.Info.Render("ℹ " + message)
}

// FormatWarningMessage formats a warning line with the ⚠ icon.
func FormatWarningMessage(message string) string {
	return styles.Warning.Render("⚠ " + message)
}

// FormatCommandMessage formats a shell command suggested to the user.
func FormatCommandMessage(command string) string {
	return styles.Command.Render("$ " + command)
}

// FormatLocationMessage formats a filesystem location line.
func FormatLocationMessage(message string) string {
	return styles.Info.Render("📁 " + message)
}

// FormatVerboseMessage formats secondary detail shown in verbose mode.
func FormatVerboseMessage(message string) string {
	return styles.Muted.Render(message)
}

// FormatErrorWithSuggestions formats an error followed by an indented list
// of remediation suggestions. With no suggestions only the error line is
// returned.
func FormatErrorWithSuggestions(message string, suggestions []string) string {
	var b strings.Builder
	b.WriteString(FormatErrorMessage(message))
	if len(suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Bold.Render("  Suggestions:"))
		for _, suggestion := range suggestions {
			b.WriteString("\n")
			b.WriteString("  • " + suggestion)
		}
	}
	return b.String()
}

// ErrorPosition locates a diagnostic inside a file.
type ErrorPosition struct {
	File   string
	Line   int
	Column int
}

// ValidationError is a positioned diagnostic produced while validating
// workflow files. Type is "error" or "warning". Context optionally holds
// source lines centered on the offending line. Hint carries remediation
// detail for logs; it is not rendered.
type ValidationError struct {
	Position ErrorPosition
	Type     string
	Message  string
	Hint     string
	Context  []string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		ToRelativePath(e.Position.File), e.Position.Line, e.Position.Column, e.Type, e.Message)
}

// FormatError renders a diagnostic in the compiler-style
// "file:line:column: type: message" form, followed by numbered context
// lines when present.
func FormatError(err ValidationError) string {
	var b strings.Builder

	position := fmt.Sprintf("%s:%d:%d:", ToRelativePath(err.Position.File), err.Position.Line, err.Position.Column)
	severity := styles.Error
	if err.Type == "warning" {
		severity = styles.Warning
	}
	b.WriteString(styles.Bold.Render(position))
	b.WriteString(" ")
	b.WriteString(severity.Render(err.Type + ":"))
	b.WriteString(" ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	if len(err.Context) > 0 {
		// Context is centered on the offending line; number lines so the
		// middle entry carries the error line number.
		start := err.Position.Line - len(err.Context)/2
		if start < 1 {
			start = 1
		}
		for i, line := range err.Context {
			number := start + i
			prefix := fmt.Sprintf("%4d | ", number)
			if number == err.Position.Line {
				b.WriteString(styles.Bold.Render(prefix + line))
			} else {
				b.WriteString(styles.Muted.Render(prefix) + line)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// ToRelativePath converts an absolute path into one relative to the current
// working directory. Relative paths are returned unchanged.
func ToRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	return rel
}

// IsAccessibleMode reports whether accessible output is requested via the
// ACCESSIBLE environment variable. Interactive prompts and spinners fall
// back to plain sequential output in this mode.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}
