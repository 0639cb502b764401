package builder

import (
	"io"

	"github.com/joeydtaylor/foghorn/pkg/internal/sink"
	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

type Sink = types.Sink

type ConsoleOption = sink.ConsoleOption

// Discard is the distinguished no-op stream; every append is dropped.
var Discard = sink.Discard

// NewConsoleSink constructs a console sink, stderr by default.
func NewConsoleSink(options ...sink.ConsoleOption) Sink {
	return sink.NewConsole(options...)
}

// ConsoleWithWriter directs the sink at an arbitrary writer.
func ConsoleWithWriter(w io.Writer) sink.ConsoleOption {
	return sink.ConsoleWithWriter(w)
}

// ConsoleWithColor enables severity coloring of message titles.
func ConsoleWithColor(on bool) sink.ConsoleOption {
	return sink.ConsoleWithColor(on)
}

// NewBufferSink constructs an in-memory sink that captures appended content.
func NewBufferSink() *sink.Buffer {
	return sink.NewBuffer()
}
