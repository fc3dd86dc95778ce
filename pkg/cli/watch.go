package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rkaminsk/trigger/pkg/console"
	"github.com/rkaminsk/trigger/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// watchDebounce collapses editor save bursts into a single re-run.
const watchDebounce = 300 * time.Millisecond

// watchWorkflows re-runs the checks every time a YAML file under dir
// changes. It blocks until the watcher breaks; a failing check run does not
// stop the watch.
func watchWorkflows(dir string, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %v", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %v", dir, err)
	}

	runAndReport := func() {
		console.ClearScreen()
		if err := run(); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		}
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage(
			fmt.Sprintf("Watching %s for changes, press Ctrl+C to stop", console.ToRelativePath(dir))))
	}
	runAndReport()

	var debounce <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWorkflowChange(event) {
				continue
			}
			watchLog.Printf("file event: %s", event)
			debounce = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch failed: %v", err)
		case <-debounce:
			debounce = nil
			runAndReport()
		}
	}
}

// isWorkflowChange filters watcher events down to YAML file writes,
// creations, removals and renames.
func isWorkflowChange(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	ext := filepath.Ext(event.Name)
	return ext == ".yml" || ext == ".yaml"
}
