// Package ui holds terminal progress helpers for the CLI commands. Nothing
// here runs in MCP mode, where stdio belongs to the protocol.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const spinnerFrames = `|/-\`

// Spinner renders an animated status line while an upstream call is in
// flight. It writes to stderr by default so stdout stays machine-readable.
type Spinner struct {
	out io.Writer

	mu      sync.Mutex
	msg     string
	stopped chan struct{}
}

// NewSpinner creates a stopped Spinner writing to stderr.
func NewSpinner() *Spinner {
	return &Spinner{out: os.Stderr}
}

// Start begins animating with the given status message.
func (s *Spinner) Start(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.stopped = make(chan struct{})
	stopped := s.stopped
	s.mu.Unlock()

	go s.animate(stopped)
}

// Update swaps the status message on a running spinner.
func (s *Spinner) Update(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Stop ends the animation and clears the status line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if s.stopped != nil {
		close(s.stopped)
		s.stopped = nil
	}
	s.mu.Unlock()

	fmt.Fprint(s.out, "\r\033[K")
}

func (s *Spinner) animate(stopped chan struct{}) {
	tick := time.NewTicker(120 * time.Millisecond)
	defer tick.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-stopped:
			return
		case <-tick.C:
			s.mu.Lock()
			msg := s.msg
			s.mu.Unlock()
			fmt.Fprintf(s.out, "\r\033[K%c %s", spinnerFrames[frame%len(spinnerFrames)], msg)
		}
	}
}
