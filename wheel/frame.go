package wheel

// FrameSize is the number of bytes clocked out of the rim per poll.
const FrameSize = 5

// Frame is one polarity-corrected snapshot of the rim's signal lines.
// A set bit means the line is physically active. Bytes 0..3 carry
// buttons and the hat; byte 4 carries only auxiliary ID bits.
type Frame [FrameSize]byte

const (
	headerMask = 0xE0 // rim ID lines, byte 0
	aux4Mask   = 0x20 // auxiliary ID line, byte 3
	aux5Mask   = 0x0F // auxiliary ID nibble, byte 4
)

func (f Frame) header() byte { return f[0] & headerMask }
func (f Frame) aux4() byte   { return f[3] & aux4Mask }
func (f Frame) aux5() byte   { return f[4] & aux5Mask }
