package wheel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OrhanYigitDurmaz/TMWheelsESP32/wheel"
)

func TestIdentify(t *testing.T) {
	cases := []struct {
		name    string
		frame   wheel.Frame
		rim     wheel.Rim
		present bool
	}{
		{
			name:    "gte idle",
			frame:   wheel.Frame{0xA0, 0x00, 0x00, 0x00, 0x00},
			rim:     wheel.RimGTE,
			present: true,
		},
		{
			// GTE wins on its header and a clear aux nibble even when
			// the remaining bits could resemble another rim.
			name:    "gte with busy lines",
			frame:   wheel.Frame{0xA5, 0xFF, 0xFF, 0xDF, 0xF0},
			rim:     wheel.RimGTE,
			present: true,
		},
		{
			name:    "f1 idle",
			frame:   wheel.Frame{0x20, 0x00, 0x00, 0x00, 0x0F},
			rim:     wheel.RimF1,
			present: true,
		},
		{
			name:    "sparco idle",
			frame:   wheel.Frame{0x20, 0x00, 0x00, 0x00, 0x00},
			rim:     wheel.RimSparco,
			present: true,
		},
		{
			// The all-ones escape pattern on bytes 3 and 4 dominates
			// the individual aux fields.
			name:    "sparco escape pattern",
			frame:   wheel.Frame{0x20, 0x00, 0x00, 0xFF, 0xFF},
			rim:     wheel.RimSparco,
			present: true,
		},
		{
			// aux4 set without the escape pattern blocks the Sparco
			// rule and matches nothing else.
			name:    "shared header aux4 only",
			frame:   wheel.Frame{0x20, 0x00, 0x00, 0x20, 0x00},
			rim:     wheel.RimNone,
			present: true,
		},
		{
			// Shared header with an in-between aux nibble matches no
			// rule; present but unidentified this poll.
			name:    "shared header ambiguous aux nibble",
			frame:   wheel.Frame{0x20, 0x00, 0x00, 0x00, 0x07},
			rim:     wheel.RimNone,
			present: true,
		},
		{
			name:    "boot pattern",
			frame:   wheel.Frame{0xC0, 0x00, 0x00, 0x00, 0x00},
			rim:     wheel.RimNone,
			present: true,
		},
		{
			name:    "empty bus",
			frame:   wheel.Frame{0x00, 0x00, 0x00, 0x00, 0x00},
			rim:     wheel.RimNone,
			present: false,
		},
		{
			name:    "all lines active",
			frame:   wheel.Frame{0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			rim:     wheel.RimNone,
			present: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rim, present := wheel.Identify(tc.frame)
			assert.Equal(t, tc.rim, rim)
			assert.Equal(t, tc.present, present)
		})
	}
}
