package sink

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/joeydtaylor/foghorn/pkg/internal/types"
)

// Buffer is an in-memory sink. It captures everything appended to it and is
// used wherever a diagnostic needs to be rendered to a string.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewBuffer constructs an empty in-memory sink.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Print appends the operands, formatted with their default formats.
func (b *Buffer) Print(args ...interface{}) types.Stream {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprint(&b.buf, args...)
	return b
}

// Printf appends according to a format specifier.
func (b *Buffer) Printf(format string, args ...interface{}) types.Stream {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(&b.buf, format, args...)
	return b
}

// Println appends the operands followed by a newline.
func (b *Buffer) Println(args ...interface{}) types.Stream {
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintln(&b.buf, args...)
	return b
}

// Writer exposes the underlying buffer.
func (b *Buffer) Writer() io.Writer {
	return &b.buf
}

// Flush is a no-op for in-memory sinks.
func (b *Buffer) Flush() error { return nil }

// String returns everything appended so far.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Reset discards the captured content.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

var _ types.Sink = (*Buffer)(nil)
