package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// FrameLogger dumps raw shift-register frames for diagnostics.
// It is a pure observer of the poll loop and has no behavioral
// coupling to decoding.
type FrameLogger interface {
	Log(frame []byte)
}

// frameLogger implements FrameLogger with a thread-safe writer.
type frameLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewFrameLogger creates a FrameLogger. If w is nil the logger is a
// no-op.
func NewFrameLogger(w io.Writer) FrameLogger {
	return &frameLogger{w: w}
}

// Log emits one timestamped line with every frame byte rendered in
// binary, matching the physical signal lines bit for bit.
func (r *frameLogger) Log(frame []byte) {
	if len(frame) == 0 || r.w == nil {
		return
	}

	var bits bytes.Buffer
	for i, b := range frame {
		if i > 0 {
			bits.WriteByte(' ')
		}
		fmt.Fprintf(&bits, "%08b", b)
	}

	line := fmt.Sprintf("%s frame: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		bits.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
