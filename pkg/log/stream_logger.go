package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// StreamLogger writes codec events to an io.Writer as a CBOR sequence.
// It is safe for concurrent use from multiple goroutines.
type StreamLogger struct {
	encoder *cbor.Encoder
	closer  io.Closer
	mu      sync.Mutex
	closed  bool
}

// NewStreamLogger creates a StreamLogger writing to w.
// Closing the logger does not close w.
func NewStreamLogger(w io.Writer) *StreamLogger {
	return &StreamLogger{encoder: newEventEncoder(w)}
}

// NewCompressedStreamLogger creates a StreamLogger that zstd-compresses the
// event sequence. Close must be called to flush the final frame.
func NewCompressedStreamLogger(w io.Writer) (*StreamLogger, error) {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("creating zstd writer: %w", err)
	}
	return &StreamLogger{
		encoder: newEventEncoder(zw),
		closer:  zw,
	}, nil
}

// Log writes an event to the stream.
func (l *StreamLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	// Encoding errors are dropped; logging must not disturb the codec.
	_ = l.encoder.Encode(event)
}

// Close flushes any compression state.
// It is safe to call Close multiple times.
// After Close is called, subsequent Log calls are silently ignored.
func (l *StreamLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// Compile-time interface satisfaction check.
var _ Logger = (*StreamLogger)(nil)
