// Package gamepad is the canonical report device the wheel decoder
// feeds: 21 buttons and one hat, independent of which rim is
// attached. It batches state changes in memory and writes exactly one
// report per flush, e.g. to a USB gadget HID endpoint.
package gamepad

import (
	"io"

	"github.com/OrhanYigitDurmaz/TMWheelsESP32/wheel"
)

// ReportSize is the fixed wire size of one input report.
const ReportSize = 4

// InputState is the accumulated canonical state.
//
// Wire format: fixed 4 bytes, little-endian.
// byte 0..2: button bitfield, bits 0..20, bit i = canonical button i
// byte 3:    hat code in the low nibble (0 centered, 1/3/5/7 cardinal)
type InputState struct {
	Buttons uint32
	Hat     wheel.Hat
}

// MarshalBinary encodes InputState to the fixed 4-byte wire format.
func (s InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, ReportSize)
	b[0] = byte(s.Buttons)
	b[1] = byte(s.Buttons >> 8)
	b[2] = byte(s.Buttons>>16) & 0x1F
	b[3] = byte(s.Hat) & 0x0F
	return b, nil
}

// UnmarshalBinary decodes InputState from the fixed 4-byte wire
// format.
func (s *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	s.Buttons = uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2]&0x1F)<<16
	s.Hat = wheel.Hat(data[3] & 0x0F)
	return nil
}

// Sink applies decoder events to an InputState and writes one report
// per flush. It implements wheel.ReportSink.
type Sink struct {
	w     io.Writer
	state InputState
}

// NewSink creates a Sink writing reports to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) Press(button int) {
	if button >= 0 && button < wheel.ButtonCount {
		s.state.Buttons |= 1 << uint(button)
	}
}

func (s *Sink) Release(button int) {
	if button >= 0 && button < wheel.ButtonCount {
		s.state.Buttons &^= 1 << uint(button)
	}
}

func (s *Sink) SetHat(h wheel.Hat) {
	s.state.Hat = h
}

// Flush sends the accumulated report once.
func (s *Sink) Flush() error {
	b, err := s.state.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = s.w.Write(b)
	return err
}

// State returns the current accumulated state.
func (s *Sink) State() InputState {
	return s.state
}
