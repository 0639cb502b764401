package types

import "io"

// Stream is the writable handle returned by every reporting operation. All
// append methods return the stream itself so call sites can chain free-form
// content after the formatted header.
type Stream interface {
	Print(args ...interface{}) Stream                 // Print appends the operands, formatted with their default formats.
	Printf(format string, args ...interface{}) Stream // Printf appends according to a format specifier.
	Println(args ...interface{}) Stream               // Println appends the operands followed by a newline.
}

// Sink is a Stream bound to a real destination. Ownership of the destination
// stays with the sink; reporters only ever borrow the handle.
type Sink interface {
	Stream
	Writer() io.Writer // Writer exposes the underlying destination.
	Flush() error      // Flush forces buffered content out; required before process termination.
}

// Painter is an optional sink capability for severity-aware coloring of
// message titles. Sinks without terminal color support simply do not
// implement it.
type Painter interface {
	Paint(severity Severity, text string) string
}
