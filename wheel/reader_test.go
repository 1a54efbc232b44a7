package wheel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OrhanYigitDurmaz/TMWheelsESP32/wheel"
)

// traceBus records the call sequence and serves fixed raw bytes.
type traceBus struct {
	raw   [wheel.FrameSize]byte
	pos   int
	calls []string
}

func (b *traceBus) Select()   { b.calls = append(b.calls, "select") }
func (b *traceBus) Deselect() { b.calls = append(b.calls, "deselect") }

func (b *traceBus) Transfer() byte {
	b.calls = append(b.calls, "transfer")
	v := b.raw[b.pos]
	b.pos++
	return v
}

func TestFrameReaderInvertsPolarity(t *testing.T) {
	// Raw lines are active-low; the reader hands out the corrected
	// view.
	bus := &traceBus{raw: [wheel.FrameSize]byte{0xDF, 0xFF, 0xFF, 0xFF, 0xF0}}
	r := &wheel.FrameReader{Bus: bus}

	frame := r.ReadFrame()
	assert.Equal(t, wheel.Frame{0x20, 0x00, 0x00, 0x00, 0x0F}, frame)
}

func TestFrameReaderBusSequence(t *testing.T) {
	bus := &traceBus{}
	r := &wheel.FrameReader{Bus: bus}

	r.ReadFrame()
	assert.Equal(t, []string{
		"select",
		"transfer", "transfer", "transfer", "transfer", "transfer",
		"deselect",
	}, bus.calls)
}
