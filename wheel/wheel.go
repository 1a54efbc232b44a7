// Package wheel decodes the serial polling protocol spoken by
// Thrustmaster wheel rims over their shared shift-register bus.
//
// The rims are hot-swappable and have no enumeration handshake; which
// rim is attached is inferred every poll from the ID lines in the
// frame itself. Raw bit positions differ per rim, so each rim has a
// bit map translating physical lines into the canonical button and
// hat numbering used by the wheel bases, and the decoder emits
// press/release and hat events only on state change.
package wheel

// Rim identifies which wheel rim is attached to the bus.
type Rim uint8

const (
	// RimNone means no rim is identified. Depending on context the
	// bus may be empty or carrying a transient/ambiguous pattern.
	RimNone Rim = iota
	// RimF1 is the Ferrari F1 rim.
	RimF1
	// RimSparco is the Sparco R383 rim, the one with a pushable hat.
	RimSparco
	// RimGTE is the Ferrari GTE rim.
	RimGTE
)

func (r Rim) String() string {
	switch r {
	case RimF1:
		return "F1"
	case RimSparco:
		return "Sparco R383"
	case RimGTE:
		return "GTE"
	}
	return "none"
}

// Canonical button space. All rims map into the same 21 buttons so
// reports stay compatible with the wheel bases' own numbering; the
// shift paddles in particular are buttons 1 and 2 on every rim.
const (
	ButtonCount = 21

	ButtonPaddleLeft  = 1
	ButtonPaddleRight = 2

	// ButtonHatPush is the Sparco rim's hat-center push.
	ButtonHatPush = 12
)
