package wheel

// Header patterns on byte 0. The rims share the bus framing but not
// the ID lines: GTE announces itself alone, the F1 and Sparco rims
// share a header and are told apart by the aux lines.
const (
	headerShared = 0x20 // F1 / Sparco family
	headerGTE    = 0xA0
	headerBoot   = 0xC0 // transitional pattern during rim power-up, not diagnostic
)

// Identify classifies the attached rim from a frame's ID bits.
//
// The rules are ordered; the first match wins:
//  1. GTE header with a clear aux nibble is the GTE rim.
//  2. Shared header with both aux fields clear, or with the all-ones
//     escape pattern on bytes 3 and 4, is the Sparco rim.
//  3. Shared header with a full aux nibble is the F1 rim.
//
// A shared header with an aux nibble of 1..14 matches no rule; the
// rim is present but not identifiable this cycle, which callers must
// treat as transient rather than as a disconnect. An unrecognized
// header means no rim is attached at all: present is false.
func Identify(f Frame) (rim Rim, present bool) {
	switch {
	case f.header() == headerGTE && f.aux5() == 0:
		return RimGTE, true
	case f.header() == headerShared && ((f.aux4() == 0 && f.aux5() == 0) || (f[3] == 0xFF && f[4] == 0xFF)):
		return RimSparco, true
	case f.header() == headerShared && f.aux5() == aux5Mask:
		return RimF1, true
	case f.header() == headerBoot || f.header() == headerGTE || f.header() == headerShared:
		return RimNone, true
	default:
		return RimNone, false
	}
}
