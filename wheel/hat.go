package wheel

// Hat is the canonical 8-position hat encoding used by the wheel
// bases. The rims have no diagonal hat positions, so only the four
// cardinal codes occur; HatCentered is a distinct released state,
// never one of the direction codes.
type Hat uint8

const (
	HatCentered Hat = 0
	HatUp       Hat = 1
	HatDown     Hat = 3
	HatLeft     Hat = 5
	HatRight    Hat = 7
)

func (h Hat) String() string {
	switch h {
	case HatUp:
		return "up"
	case HatDown:
		return "down"
	case HatLeft:
		return "left"
	case HatRight:
		return "right"
	}
	return "centered"
}
