package types

// Direction represents navigation direction
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// MarshalText encodes the direction by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection converts a string to Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	default:
		return 0, false
	}
}

// Directions lists every direction in declaration order.
func Directions() []Direction {
	return []Direction{DirLeft, DirRight, DirUp, DirDown}
}

// CommandKind selects between moving focus and relocating the focused window.
type CommandKind int

const (
	KindSwitch CommandKind = iota // Focus another workspace
	KindMove                      // Move the focused container, then follow it
)

// String returns the CLI token of a CommandKind
func (k CommandKind) String() string {
	switch k {
	case KindSwitch:
		return "switch"
	case KindMove:
		return "move"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by its CLI token
func (k CommandKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseCommandKind converts a CLI token to CommandKind
func ParseCommandKind(s string) (CommandKind, bool) {
	switch s {
	case "switch":
		return KindSwitch, true
	case "move":
		return KindMove, true
	default:
		return 0, false
	}
}
