// Package workflow reads GitHub Actions workflow files and checks that the
// deployment pipelines can actually be dispatched: the file exists, parses
// as YAML, declares the workflow_dispatch trigger, and accepts the wip
// input the dispatch requests send.
package workflow

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var definitionLog = logger.New("workflow:definition")

// Definition is a parsed workflow file, reduced to the parts dispatch
// checking needs.
type Definition struct {
	// Name is the workflow's display name, empty when the file omits it.
	Name string
	// Path is the file the definition was read from.
	Path string

	triggers map[string]any
}

// ParseDefinition parses workflow YAML. Syntax errors come back as
// console.ValidationError values carrying the position the parser reported
// and context lines from the source.
func ParseDefinition(content []byte, path string) (*Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, syntaxError(err, content, path)
	}

	def := &Definition{Path: path, triggers: make(map[string]any)}
	if name, ok := raw["name"].(string); ok {
		def.Name = name
	}

	// The on section takes three shapes: a single event name, a list of
	// event names, or a map from event name to configuration.
	switch on := raw["on"].(type) {
	case string:
		def.triggers[on] = nil
	case []any:
		for _, item := range on {
			if name, ok := item.(string); ok {
				def.triggers[name] = nil
			}
		}
	case map[string]any:
		for name, config := range on {
			def.triggers[name] = config
		}
	}

	definitionLog.Printf("parsed %s: name=%q triggers=%d", path, def.Name, len(def.triggers))
	return def, nil
}

// ParseDefinitionFile reads and parses the workflow file at path.
func ParseDefinitionFile(path string) (*Definition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow file: %v", err)
	}
	return ParseDefinition(content, path)
}

// HasTrigger reports whether the workflow declares the named trigger.
func (d *Definition) HasTrigger(name string) bool {
	_, ok := d.triggers[name]
	return ok
}

// HasWorkflowDispatch reports whether the workflow can be started through
// the dispatches API.
func (d *Definition) HasWorkflowDispatch() bool {
	return d.HasTrigger("workflow_dispatch")
}

// DispatchInputs returns the inputs declared on the workflow_dispatch
// trigger, or nil when the trigger is absent or declares none.
func (d *Definition) DispatchInputs() map[string]any {
	config, ok := d.triggers["workflow_dispatch"].(map[string]any)
	if !ok {
		return nil
	}
	inputs, _ := config["inputs"].(map[string]any)
	return inputs
}

// HasDispatchInput reports whether the workflow_dispatch trigger declares
// the named input. Dispatching with an undeclared input is rejected by the
// API, so this is checked before any dispatch command runs.
func (d *Definition) HasDispatchInput(name string) bool {
	_, ok := d.DispatchInputs()[name]
	return ok
}

// syntaxError converts a YAML parse failure into a positioned diagnostic
// with up to two context lines either side of the offending line.
func syntaxError(err error, content []byte, path string) error {
	line, column, message := ExtractYAMLError(err)
	return console.ValidationError{
		Position: console.ErrorPosition{File: path, Line: line, Column: column},
		Type:     "error",
		Message:  message,
		Context:  contextLines(content, line),
	}
}

// contextLines returns up to five source lines centered on line, or nil
// when the line is unknown. The window is kept symmetric around the error
// line so that rendering can number it from the middle entry.
func contextLines(content []byte, line int) []string {
	if line <= 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if line > len(lines) {
		return nil
	}
	radius := 2
	if line-1 < radius {
		radius = line - 1
	}
	if len(lines)-line < radius {
		radius = len(lines) - line
	}
	return lines[line-1-radius : line+radius]
}
