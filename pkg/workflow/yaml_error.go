package workflow

import (
	"strconv"
	"strings"

	"github.com/rkaminsk/trigger/pkg/logger"
)

var yamlErrorLog = logger.New("workflow:yaml_error")

// ExtractYAMLError pulls line and column information out of a YAML parse
// error. goccy/go-yaml reports positions as "[line:column] message"; other
// YAML libraries use "yaml: line N:" prefixes. When no position can be
// recovered, line and column are 0 and the message is the raw error text.
func ExtractYAMLError(err error) (line int, column int, message string) {
	errStr := err.Error()

	line, column, message = extractGoccyPosition(errStr)
	if line > 0 || column > 0 {
		yamlErrorLog.Printf("extracted goccy position %d:%d", line, column)
		return line, column, message
	}

	line, message = extractYAMLLinePrefix(errStr)
	if line > 0 {
		yamlErrorLog.Printf("extracted yaml line prefix %d", line)
		return line, 0, message
	}

	return 0, 0, errStr
}

// extractGoccyPosition parses the "[line:column] message" form. goccy
// renders multi-line errors with source context after the first line, which
// is dropped here because the caller re-reads the file for context.
func extractGoccyPosition(errStr string) (line int, column int, message string) {
	start := strings.Index(errStr, "[")
	end := strings.Index(errStr, "]")
	if start < 0 || end <= start {
		return 0, 0, ""
	}

	location := errStr[start+1 : end]
	parts := strings.Split(location, ":")
	if len(parts) != 2 {
		return 0, 0, ""
	}
	line, lineErr := strconv.Atoi(strings.TrimSpace(parts[0]))
	column, columnErr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if lineErr != nil || columnErr != nil {
		return 0, 0, ""
	}

	message = strings.TrimSpace(errStr[end+1:])
	if newline := strings.Index(message, "\n"); newline >= 0 {
		message = strings.TrimSpace(message[:newline])
	}
	return line, column, message
}

// extractYAMLLinePrefix parses the "yaml: line N: message" form used by
// other YAML libraries.
func extractYAMLLinePrefix(errStr string) (line int, message string) {
	_, rest, found := strings.Cut(errStr, "yaml: line ")
	if !found {
		return 0, ""
	}
	numStr, msg, found := strings.Cut(rest, ":")
	if !found {
		return 0, ""
	}
	line, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil {
		return 0, ""
	}
	return line, strings.TrimSpace(msg)
}
