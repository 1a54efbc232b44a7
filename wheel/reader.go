package wheel

import "time"

// Bus is the physical shift-register transport. Implementations clock
// one byte at a time while the select line is asserted; none of the
// operations can fail observably, an empty bus just reads as idle
// lines and is detected downstream by header mismatch.
type Bus interface {
	Select()
	Deselect()
	Transfer() byte
}

// DefaultSettle is the hardware settle time the rims need around the
// select line and between byte transfers.
const DefaultSettle = 40 * time.Microsecond

// FrameReader performs one poll of the bus: select, read FrameSize
// bytes with a settle delay after each step, deselect, and invert
// polarity (the lines are active-low).
type FrameReader struct {
	Bus Bus
	// Settle is the per-step settle delay. Zero disables waiting,
	// which tests rely on.
	Settle time.Duration
}

// ReadFrame reads one polarity-corrected frame. It never fails.
func (r *FrameReader) ReadFrame() Frame {
	var f Frame
	r.Bus.Select()
	r.settle()
	for i := range f {
		f[i] = ^r.Bus.Transfer()
		r.settle()
	}
	r.Bus.Deselect()
	r.settle()
	return f
}

func (r *FrameReader) settle() {
	if r.Settle > 0 {
		time.Sleep(r.Settle)
	}
}
