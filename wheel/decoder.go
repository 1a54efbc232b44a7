package wheel

import (
	"context"
	"log/slog"
	"time"
)

// Default poll cadence and the backoff between identification
// attempts while no rim is attached.
const (
	DefaultPollInterval = 10 * time.Millisecond
	DefaultRetryBackoff = time.Second
)

// Decoder runs the decode-identify-map-diff pipeline. It exclusively
// owns the previous frame and the derived canonical state, so a
// single poll goroutine needs no locking.
type Decoder struct {
	Reader *FrameReader
	Sink   ReportSink

	// Observe, when set, receives every raw frame before decoding.
	// Purely diagnostic.
	Observe func(Frame)

	PollInterval time.Duration
	RetryBackoff time.Duration

	logger *slog.Logger

	rim         Rim
	identified  bool
	prev        Frame
	safeApplied bool
	pushHeld    bool
}

// NewDecoder wires a decoder to a bus and a report sink.
func NewDecoder(bus Bus, sink ReportSink, logger *slog.Logger) *Decoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decoder{
		Reader:       &FrameReader{Bus: bus, Settle: DefaultSettle},
		Sink:         sink,
		PollInterval: DefaultPollInterval,
		RetryBackoff: DefaultRetryBackoff,
		logger:       logger,
	}
}

// Rim returns the currently identified rim, or RimNone.
func (d *Decoder) Rim() Rim {
	if !d.identified {
		return RimNone
	}
	return d.rim
}

// Step runs one full poll cycle to completion and reports whether a
// rim is present on the bus. A false return selects the slower retry
// cadence in Run.
func (d *Decoder) Step() bool {
	cur := d.Reader.ReadFrame()
	if d.Observe != nil {
		d.Observe(cur)
	}

	rim, present := Identify(cur)
	if !present {
		d.identified = false
		d.rim = RimNone
		if !d.safeApplied {
			// First cycle of an absence episode: force everything
			// released so a hot-unplug cannot leave stuck inputs.
			d.logger.Info("rim disconnected, releasing all outputs")
			d.releaseAll()
			d.safeApplied = true
		}
		return false
	}
	d.safeApplied = false

	if rim == RimNone {
		// Recognized header but no identification rule matched, e.g.
		// the shared header with an in-between aux nibble. Transient;
		// emit nothing and leave outputs alone.
		d.identified = false
		return true
	}

	if !d.identified || rim != d.rim {
		d.logger.Info("rim identified", "rim", rim.String())
		d.rim = rim
		d.identified = true
		d.pushHeld = false
		// The fresh frame seeds the diff; never compare against data
		// read before a disconnect or rim swap.
		d.prev = cur
		return true
	}

	d.decode(cur)
	d.prev = cur
	return true
}

// Run polls until ctx is canceled. A cycle always runs to completion
// once started; cancellation is honored between cycles.
func (d *Decoder) Run(ctx context.Context) error {
	for {
		present := d.Step()
		delay := d.PollInterval
		if !present {
			delay = d.RetryBackoff
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// decode diffs cur against the previous frame and emits one event per
// changed mapped line, then flushes once if anything was emitted.
// Bytes are walked in order and bits from 7 down to 0 so replays stay
// deterministic.
func (d *Decoder) decode(cur Frame) {
	table := rimMap(d.rim)
	changed := false

	for byteIdx := 0; byteIdx < 4; byteIdx++ {
		delta := cur[byteIdx] ^ d.prev[byteIdx]
		if delta == 0 {
			continue
		}
		for bit := 7; bit >= 0; bit-- {
			mask := byte(1) << uint(bit)
			if delta&mask == 0 {
				continue
			}
			entry := table[byteIdx*8+bit]
			if entry == Unmapped {
				continue
			}
			active := cur[byteIdx]&mask != 0
			if entry.IsHat() {
				if active {
					d.Sink.SetHat(entry.Hat())
				} else {
					d.Sink.SetHat(HatCentered)
				}
			} else if active {
				d.Sink.Press(int(entry))
			} else {
				d.Sink.Release(int(entry))
			}
			changed = true
		}
	}

	if d.rim == RimSparco {
		// The hat-center push is a compound condition: the push flag
		// with every direction line idle. The direction guard keeps a
		// directional press from also registering as a push.
		pushed := cur[1]&sparcoPushFlag != 0 && cur[1]&sparcoDirMask == 0
		if pushed != d.pushHeld {
			d.pushHeld = pushed
			if pushed {
				d.Sink.Press(ButtonHatPush)
			} else {
				d.Sink.Release(ButtonHatPush)
			}
			changed = true
		}
	}

	if changed {
		d.flush()
	}
}

func (d *Decoder) releaseAll() {
	for b := 0; b < ButtonCount; b++ {
		d.Sink.Release(b)
	}
	d.Sink.SetHat(HatCentered)
	d.pushHeld = false
	d.flush()
}

func (d *Decoder) flush() {
	if err := d.Sink.Flush(); err != nil {
		d.logger.Error("report flush failed", "error", err)
	}
}
