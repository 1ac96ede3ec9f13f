package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner shows an animated line while a pipeline step runs. On writers that
// are not terminals it prints the line once and never animates.
type Spinner struct {
	w   io.Writer
	tty bool

	mu     sync.Mutex
	symbol string
	text   string
	stop   chan struct{}
	done   chan struct{}
}

// NewSpinner creates a spinner writing to w. A nil w means the current log output.
func NewSpinner(w io.Writer) *Spinner {
	if w == nil {
		w = Output()
	}
	return &Spinner{w: w, tty: isTerminal(w)}
}

// LogWithSpinner starts the spinner with the given symbol and message,
// persisting any line that was already spinning.
func (s *Spinner) LogWithSpinner(symbol, msg string) {
	s.StopSpinner()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbol = symbol
	s.text = msg

	if !s.tty {
		fmt.Fprintf(s.w, "%s  %s\n", symbol, msg)
		return
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.animate(s.stop, s.done, msg)
}

// StopSpinner stops the animation and leaves the final line in place.
// It is a no-op when nothing is spinning.
func (s *Spinner) StopSpinner() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r\033[K%s  %s\n", s.symbol, s.text)
}

func (s *Spinner) animate(stop <-chan struct{}, done chan<- struct{}, msg string) {
	defer close(done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(s.w, "\r\033[K%s %s", spinnerFrames[i%len(spinnerFrames)], msg)
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
