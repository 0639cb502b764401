package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
	"github.com/joeydtaylor/foghorn/pkg/internal/utils"
)

// ConsoleOption configures a console sink.
type ConsoleOption func(*ConsoleSink)

// ConsoleSink writes diagnostics to a textual destination, stderr by default.
// Writes are buffered; Flush must be called before process termination, which
// the reporter's abort path does.
type ConsoleSink struct {
	componentMetadata types.ComponentMetadata

	mu       sync.Mutex
	w        io.Writer
	bw       *bufio.Writer
	colorize bool
}

// NewConsole constructs a console sink with configurable options.
func NewConsole(options ...ConsoleOption) *ConsoleSink {
	s := &ConsoleSink{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "CONSOLE_SINK",
		},
		w: os.Stderr,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.bw = bufio.NewWriter(s.w)
	return s
}

// ConsoleWithWriter directs the sink at an arbitrary writer.
func ConsoleWithWriter(w io.Writer) ConsoleOption {
	return func(s *ConsoleSink) {
		s.w = w
	}
}

// ConsoleWithColor enables severity coloring of message titles.
func ConsoleWithColor(on bool) ConsoleOption {
	return func(s *ConsoleSink) {
		s.colorize = on
	}
}

// Print appends the operands, formatted with their default formats.
func (s *ConsoleSink) Print(args ...interface{}) types.Stream {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.bw, args...)
	return s
}

// Printf appends according to a format specifier.
func (s *ConsoleSink) Printf(format string, args ...interface{}) types.Stream {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.bw, format, args...)
	return s
}

// Println appends the operands followed by a newline.
func (s *ConsoleSink) Println(args ...interface{}) types.Stream {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.bw, args...)
	return s
}

// Writer exposes the underlying destination.
func (s *ConsoleSink) Writer() io.Writer {
	return s.w
}

// Flush forces buffered content out to the destination.
func (s *ConsoleSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bw.Flush()
}

// Paint colors the text according to severity when coloring is enabled.
func (s *ConsoleSink) Paint(severity types.Severity, text string) string {
	if !s.colorize {
		return text
	}
	switch severity {
	case types.SeverityWarning:
		return color.New(color.FgYellow).Sprint(text)
	case types.SeveritySerious:
		return color.New(color.FgRed).Sprint(text)
	case types.SeverityFatal:
		return color.New(color.FgRed, color.Bold).Sprint(text)
	default:
		return text
	}
}

// GetComponentMetadata returns the sink's identifying metadata.
func (s *ConsoleSink) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

var (
	_ types.Sink    = (*ConsoleSink)(nil)
	_ types.Painter = (*ConsoleSink)(nil)
)
