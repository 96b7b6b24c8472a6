package ui

// AppMode names a navigable screen. Navigation messages carry an AppMode as
// their route.
type AppMode int

const (
	ModeHome AppMode = iota
	ModePoints
)

func (m AppMode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModePoints:
		return "Points"
	default:
		return "Unknown"
	}
}
