package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	mu  sync.Mutex
	out io.Writer = color.Output

	debugEnabled bool
)

var (
	infoBadge  = color.New(color.BgCyan, color.FgBlack).SprintFunc()
	doneBadge  = color.New(color.BgGreen, color.FgBlack).SprintFunc()
	warnBadge  = color.New(color.BgYellow, color.FgBlack).SprintFunc()
	errorBadge = color.New(color.BgRed, color.FgWhite).SprintFunc()

	warnText  = color.New(color.FgYellow).SprintFunc()
	errorText = color.New(color.FgRed).SprintFunc()
	debugText = color.New(color.FgCyan).SprintFunc()
)

// Init enables or disables debug output.
func Init(enableDebug bool) {
	mu.Lock()
	defer mu.Unlock()
	debugEnabled = enableDebug
}

// SetOutput redirects all log output to w and returns a function that
// restores the previous writer.
func SetOutput(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return func() {
		mu.Lock()
		defer mu.Unlock()
		out = prev
	}
}

// Output returns the writer log output currently goes to.
func Output() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return out
}

// Log prints msg as-is. Called with no arguments it prints a blank line.
func Log(msg ...string) {
	write(strings.Join(msg, " "))
}

// Info prints an informational message.
func Info(msg string) {
	write(infoBadge(" INFO ") + " " + msg)
}

// Done prints a success message.
func Done(msg string) {
	write(doneBadge(" DONE ") + " " + msg)
}

// Warn prints a warning.
func Warn(msg string) {
	write(warnBadge(" WARN ") + " " + warnText(msg))
}

// Error prints an error message.
func Error(msg string) {
	write(errorBadge(" ERROR ") + " " + errorText(msg))
}

// Debugf prints a formatted debug message when debug output is enabled.
func Debugf(format string, args ...any) {
	mu.Lock()
	enabled := debugEnabled
	mu.Unlock()
	if !enabled {
		return
	}
	write(debugText("[debug] " + fmt.Sprintf(format, args...)))
}

func write(line string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, line)
}
