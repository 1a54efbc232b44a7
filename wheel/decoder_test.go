package wheel_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OrhanYigitDurmaz/TMWheelsESP32/wheel"
)

// scriptBus replays a fixed sequence of polarity-corrected frames,
// presenting them the way the hardware does: one inverted byte per
// transfer. The last frame repeats once the script runs out.
type scriptBus struct {
	frames []wheel.Frame
	frame  int
	offset int
}

func (b *scriptBus) Select()   {}
func (b *scriptBus) Deselect() {}

func (b *scriptBus) Transfer() byte {
	idx := b.frame
	if idx >= len(b.frames) {
		idx = len(b.frames) - 1
	}
	v := b.frames[idx][b.offset]
	b.offset++
	if b.offset == wheel.FrameSize {
		b.offset = 0
		b.frame++
	}
	return ^v
}

type event struct {
	kind string
	arg  int
}

func press(b int) event     { return event{kind: "press", arg: b} }
func release(b int) event   { return event{kind: "release", arg: b} }
func hat(h wheel.Hat) event { return event{kind: "hat", arg: int(h)} }
func flush() event          { return event{kind: "flush"} }

// recordSink records every emission in order.
type recordSink struct {
	events []event
}

func (s *recordSink) Press(b int)        { s.events = append(s.events, press(b)) }
func (s *recordSink) Release(b int)      { s.events = append(s.events, release(b)) }
func (s *recordSink) SetHat(h wheel.Hat) { s.events = append(s.events, hat(h)) }
func (s *recordSink) Flush() error       { s.events = append(s.events, flush()); return nil }

func newTestDecoder(frames ...wheel.Frame) (*wheel.Decoder, *recordSink) {
	sink := &recordSink{}
	d := wheel.NewDecoder(&scriptBus{frames: frames}, sink, slog.New(slog.NewTextHandler(io.Discard, nil)))
	d.Reader.Settle = 0
	return d, sink
}

var (
	f1Idle     = wheel.Frame{0x20, 0x00, 0x00, 0x00, 0x0F}
	f1PaddleL  = wheel.Frame{0x22, 0x00, 0x00, 0x00, 0x0F}
	sparcoIdle = wheel.Frame{0x20, 0x00, 0x00, 0x00, 0x00}
	emptyBus   = wheel.Frame{0x00, 0x00, 0x00, 0x00, 0x00}
)

func TestSameFrameEmitsNothing(t *testing.T) {
	d, sink := newTestDecoder(f1Idle, f1Idle, f1Idle)

	for i := 0; i < 3; i++ {
		assert.True(t, d.Step())
	}
	assert.Equal(t, wheel.RimF1, d.Rim())
	assert.Empty(t, sink.events)
}

func TestPressAndReleaseEmitOnce(t *testing.T) {
	d, sink := newTestDecoder(f1Idle, f1PaddleL, f1PaddleL, f1Idle)

	for i := 0; i < 4; i++ {
		d.Step()
	}
	assert.Equal(t, []event{
		press(wheel.ButtonPaddleLeft), flush(),
		release(wheel.ButtonPaddleLeft), flush(),
	}, sink.events)
}

func TestMultipleChangesOneCycleOneFlush(t *testing.T) {
	// Byte 0 bit 2 is button 0, byte 2 bit 0 is button 16 on the F1
	// rim; both change in the same cycle and flush once, byte 0
	// resolved first.
	d, sink := newTestDecoder(f1Idle, wheel.Frame{0x24, 0x00, 0x01, 0x00, 0x0F})

	d.Step()
	d.Step()
	assert.Equal(t, []event{press(0), press(16), flush()}, sink.events)
}

func TestHatTransitions(t *testing.T) {
	up := wheel.Frame{0x20, 0x80, 0x00, 0x00, 0x0F}
	down := wheel.Frame{0x20, 0x40, 0x00, 0x00, 0x0F}
	d, sink := newTestDecoder(f1Idle, up, down, f1Idle)

	for i := 0; i < 4; i++ {
		d.Step()
	}
	assert.Equal(t, []event{
		hat(wheel.HatUp), flush(),
		// Direction change: the released line always emits centered
		// before the new direction lands.
		hat(wheel.HatCentered), hat(wheel.HatDown), flush(),
		hat(wheel.HatCentered), flush(),
	}, sink.events)
}

func TestDisconnectReleasesEverythingOnce(t *testing.T) {
	d, sink := newTestDecoder(f1Idle, f1PaddleL, emptyBus, emptyBus, emptyBus)

	assert.True(t, d.Step())
	assert.True(t, d.Step())
	assert.False(t, d.Step())
	countAfterFirstAbsence := len(sink.events)
	assert.False(t, d.Step())
	assert.False(t, d.Step())

	// No reset spam on later absent cycles.
	assert.Len(t, sink.events, countAfterFirstAbsence)
	assert.Equal(t, wheel.RimNone, d.Rim())

	want := []event{press(wheel.ButtonPaddleLeft), flush()}
	for b := 0; b < wheel.ButtonCount; b++ {
		want = append(want, release(b))
	}
	want = append(want, hat(wheel.HatCentered), flush())
	assert.Equal(t, want, sink.events)
}

func TestReconnectDoesNotDiffStaleFrame(t *testing.T) {
	d, sink := newTestDecoder(f1PaddleL, emptyBus, f1Idle, f1PaddleL)

	d.Step() // identified with the paddle already held; frame only seeds
	assert.Empty(t, sink.events)

	d.Step() // disconnect reset
	resetLen := len(sink.events)

	d.Step() // re-identified; new frame seeds, no stale diff
	assert.Len(t, sink.events, resetLen)

	d.Step()
	assert.Equal(t, []event{press(wheel.ButtonPaddleLeft), flush()}, sink.events[resetLen:])
}

func TestSparcoHatPush(t *testing.T) {
	pushed := wheel.Frame{0x20, 0x08, 0x00, 0x00, 0x00}
	d, sink := newTestDecoder(sparcoIdle, pushed, sparcoIdle)

	for i := 0; i < 3; i++ {
		d.Step()
	}
	assert.Equal(t, wheel.RimSparco, d.Rim())
	assert.Equal(t, []event{
		press(wheel.ButtonHatPush), flush(),
		release(wheel.ButtonHatPush), flush(),
	}, sink.events)
}

func TestSparcoHatPushGuardedByDirections(t *testing.T) {
	// Push flag with a direction line active must not register as a
	// push; only the directional press is real.
	upWithFlag := wheel.Frame{0x20, 0x88, 0x00, 0x00, 0x00}
	d, sink := newTestDecoder(sparcoIdle, upWithFlag, sparcoIdle)

	for i := 0; i < 3; i++ {
		d.Step()
	}
	assert.Equal(t, []event{
		hat(wheel.HatUp), flush(),
		hat(wheel.HatCentered), flush(),
	}, sink.events)
}

func TestAmbiguousCycleIsTransient(t *testing.T) {
	ambiguous := wheel.Frame{0x20, 0x00, 0x00, 0x00, 0x07}
	d, sink := newTestDecoder(f1Idle, ambiguous, f1Idle, f1PaddleL)

	assert.True(t, d.Step())
	assert.Equal(t, wheel.RimF1, d.Rim())

	// Present but not identifiable: no emissions, no disconnect churn.
	assert.True(t, d.Step())
	assert.Equal(t, wheel.RimNone, d.Rim())
	assert.Empty(t, sink.events)

	assert.True(t, d.Step())
	d.Step()
	assert.Equal(t, []event{press(wheel.ButtonPaddleLeft), flush()}, sink.events)
}

func TestF1EndToEnd(t *testing.T) {
	d, sink := newTestDecoder(f1Idle, f1PaddleL, f1Idle)

	d.Step()
	assert.Equal(t, wheel.RimF1, d.Rim())

	d.Step()
	assert.Equal(t, []event{press(wheel.ButtonPaddleLeft), flush()}, sink.events)

	d.Step()
	assert.Equal(t, []event{
		press(wheel.ButtonPaddleLeft), flush(),
		release(wheel.ButtonPaddleLeft), flush(),
	}, sink.events)
}

func TestRunHonorsCancellation(t *testing.T) {
	d, _ := newTestDecoder(f1Idle)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
