package console

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rkaminsk/trigger/pkg/styles"
	"github.com/rkaminsk/trigger/pkg/tty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner shows an animated progress indicator on stderr while a slow
// operation runs. Animation only happens on interactive terminals outside
// accessible mode; otherwise the spinner stays silent until a final message
// is printed, keeping piped output and CI logs clean.
type Spinner struct {
	mu       sync.Mutex
	message  string
	running  bool
	animated bool
	done     chan struct{}
	finished chan struct{}
}

// NewSpinner creates a spinner with an initial message.
func NewSpinner(message string) *Spinner {
	return &Spinner{message: message}
}

// Start begins the animation. Subsequent calls are no-ops until Stop.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.animated = tty.IsStderrTerminal() && !IsAccessibleMode()

	if !s.animated {
		if IsAccessibleMode() {
			fmt.Fprintln(os.Stderr, s.message)
		}
		return
	}

	s.done = make(chan struct{})
	s.finished = make(chan struct{})
	go s.spin(s.done, s.finished)
}

func (s *Spinner) spin(done, finished chan struct{}) {
	defer close(finished)

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	frame := 0
	for {
		s.mu.Lock()
		message := s.message
		s.mu.Unlock()
		fmt.Fprintf(os.Stderr, "\r\033[K%s %s", styles.Info.Render(spinnerFrames[frame]), message)
		frame = (frame + 1) % len(spinnerFrames)

		select {
		case <-done:
			fmt.Fprint(os.Stderr, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// UpdateMessage replaces the message shown next to the spinner.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	s.message = message
	running := s.running
	animated := s.animated
	s.mu.Unlock()

	if running && !animated && IsAccessibleMode() {
		fmt.Fprintln(os.Stderr, message)
	}
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	animated := s.animated
	done := s.done
	finished := s.finished
	s.mu.Unlock()

	if animated {
		close(done)
		<-finished
	}
}

// StopWithMessage halts the animation and prints a final message in its
// place.
func (s *Spinner) StopWithMessage(message string) {
	s.Stop()
	fmt.Fprintln(os.Stderr, message)
}
