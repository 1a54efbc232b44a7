package wheel

// MapEntry is one cell of a rim's bit map: a canonical button index
// in [0,ButtonCount), a hat direction tag, or Unmapped.
type MapEntry int8

const (
	Unmapped    MapEntry = -1
	HatTagUp    MapEntry = -2
	HatTagDown  MapEntry = -3
	HatTagLeft  MapEntry = -4
	HatTagRight MapEntry = -5
)

// IsHat reports whether the entry is a hat direction tag.
func (e MapEntry) IsHat() bool { return e <= HatTagUp && e >= HatTagRight }

// Hat returns the canonical hat code for a hat direction tag.
func (e MapEntry) Hat() Hat {
	switch e {
	case HatTagUp:
		return HatUp
	case HatTagDown:
		return HatDown
	case HatTagLeft:
		return HatLeft
	case HatTagRight:
		return HatRight
	}
	return HatCentered
}

// Bit maps are indexed by byteIndex*8 + bitIndex. Byte 0 bits 7..5
// carry the rim ID lines and byte 3 bit 5 an aux ID line; those are
// never buttons. The values follow the rims' published numbering on
// the wheel bases, with the shift paddles fixed at 1 (left) and
// 2 (right) everywhere.

var f1Map = [32]MapEntry{
	// byte 0, bits 0..7
	ButtonPaddleRight, ButtonPaddleLeft, 0, 4, 3, Unmapped, Unmapped, Unmapped,
	// byte 1
	8, 7, 6, 5, HatTagRight, HatTagLeft, HatTagDown, HatTagUp,
	// byte 2
	16, 15, 14, 13, 12, 11, 10, 9,
	// byte 3
	Unmapped, Unmapped, Unmapped, 20, 19, Unmapped, 18, 17,
}

var sparcoMap = [32]MapEntry{
	// byte 0, bits 0..7
	ButtonPaddleRight, ButtonPaddleLeft, 4, 3, 0, Unmapped, Unmapped, Unmapped,
	// byte 1; bit 3 is the hat-push flag, handled as a compound
	// condition by the decoder rather than as a plain line
	7, 6, 5, Unmapped, HatTagRight, HatTagLeft, HatTagDown, HatTagUp,
	// byte 2
	Unmapped, Unmapped, Unmapped, Unmapped, 11, 10, 9, 8,
	// byte 3
	Unmapped, Unmapped, Unmapped, Unmapped, Unmapped, Unmapped, Unmapped, Unmapped,
}

var gteMap = [32]MapEntry{
	// byte 0, bits 0..7
	ButtonPaddleRight, ButtonPaddleLeft, 3, 0, 4, Unmapped, Unmapped, Unmapped,
	// byte 1
	HatTagRight, HatTagLeft, HatTagDown, HatTagUp, 8, 7, 6, 5,
	// byte 2
	16, 15, 14, 13, 12, 11, 10, 9,
	// byte 3
	Unmapped, Unmapped, Unmapped, 20, 19, Unmapped, 18, 17,
}

// Sparco hat byte layout used by the hat-push condition.
const (
	sparcoPushFlag = 0x08 // byte 1 bit 3
	sparcoDirMask  = 0xF0 // byte 1 direction lines
)

func rimMap(r Rim) *[32]MapEntry {
	switch r {
	case RimF1:
		return &f1Map
	case RimSparco:
		return &sparcoMap
	case RimGTE:
		return &gteMap
	}
	return nil
}

// Mapping resolves one physical line of a rim to its canonical map
// entry. byteIndex must be in [0,3] and bitIndex in [0,7]; anything
// else, or an unidentified rim, resolves to Unmapped.
func Mapping(r Rim, byteIndex, bitIndex int) MapEntry {
	m := rimMap(r)
	if m == nil || byteIndex < 0 || byteIndex > 3 || bitIndex < 0 || bitIndex > 7 {
		return Unmapped
	}
	return m[byteIndex*8+bitIndex]
}
