package io

import (
	"bufio"
	"io"
	"strings"
	"sync"
)

// TraceWriter writes one newline-terminated line per call and flushes it
// before returning.
type TraceWriter struct {
	mu      sync.Mutex
	w       io.Writer
	flusher interface{ Flush() error }
}

// NewTraceWriter creates a new TraceWriter. If the writer already supports
// flushing, it uses that directly. Otherwise, it wraps it in a bufio.Writer.
func NewTraceWriter(w io.Writer) *TraceWriter {
	tw := &TraceWriter{w: w}

	if f, ok := w.(interface{ Flush() error }); ok {
		tw.flusher = f
	} else {
		bw := bufio.NewWriter(w)
		tw.w = bw
		tw.flusher = bw
	}

	return tw
}

// WriteLine writes line followed by a single newline and flushes.
// Trailing newlines already present in line are collapsed.
func (tw *TraceWriter) WriteLine(line string) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if _, err := io.WriteString(tw.w, strings.TrimRight(line, "\r\n")+"\n"); err != nil {
		return err
	}

	return tw.flusher.Flush()
}

// Write implements io.Writer. Each call is treated as one line.
func (tw *TraceWriter) Write(p []byte) (int, error) {
	if err := tw.WriteLine(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
