package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFlusher is a mock writer that tracks flush calls
type mockFlusher struct {
	bytes.Buffer
	flushCount int
	flushError error
}

func (m *mockFlusher) Flush() error {
	m.flushCount++
	return m.flushError
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestNewTraceWriter(t *testing.T) {
	t.Run("wraps non-flushing writer", func(t *testing.T) {
		var buf bytes.Buffer
		tw := NewTraceWriter(&buf)

		assert.NotNil(t, tw.flusher)
		assert.NotEqual(t, &buf, tw.w)
	})

	t.Run("uses existing flusher", func(t *testing.T) {
		mf := &mockFlusher{}
		tw := NewTraceWriter(mf)

		assert.Equal(t, mf, tw.flusher)
		assert.Equal(t, mf, tw.w)
	})
}

func TestTraceWriter_WriteLine(t *testing.T) {
	t.Run("terminates line and flushes", func(t *testing.T) {
		mf := &mockFlusher{}
		tw := NewTraceWriter(mf)

		require.NoError(t, tw.WriteLine("tw pipelines list"))

		assert.Equal(t, "tw pipelines list\n", mf.String())
		assert.Equal(t, 1, mf.flushCount)
	})

	t.Run("collapses trailing newlines", func(t *testing.T) {
		mf := &mockFlusher{}
		tw := NewTraceWriter(mf)

		require.NoError(t, tw.WriteLine("tw info\n\n"))

		assert.Equal(t, "tw info\n", mf.String())
	})

	t.Run("data reaches buffered destination", func(t *testing.T) {
		var buf bytes.Buffer
		tw := NewTraceWriter(&buf)

		require.NoError(t, tw.WriteLine("first"))
		require.NoError(t, tw.WriteLine("second"))

		assert.Equal(t, "first\nsecond\n", buf.String())
	})

	t.Run("returns flush error", func(t *testing.T) {
		mf := &mockFlusher{flushError: errors.New("flush failed")}
		tw := NewTraceWriter(mf)

		err := tw.WriteLine("tw info")
		assert.EqualError(t, err, "flush failed")
	})

	t.Run("returns write error", func(t *testing.T) {
		tw := NewTraceWriter(failingWriter{})

		assert.Error(t, tw.WriteLine("tw info"))
	})
}

func TestTraceWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraceWriter(&buf)

	n, err := tw.Write([]byte("tw runs list"))

	require.NoError(t, err)
	assert.Equal(t, len("tw runs list"), n)
	assert.Equal(t, "tw runs list\n", buf.String())
}
