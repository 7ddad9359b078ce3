package focus

import (
	"fmt"

	"github.com/yourusername/ringnav/internal/types"
)

// Action is the shape of a navigation decision
type Action int

const (
	ActionStep   Action = iota // Neighbor inside the ring or the next ring
	ActionWrap                 // Back to the first workspace or ring
	ActionCreate               // A workspace or ring that does not exist yet
)

// String returns the string representation of an Action
func (a Action) String() string {
	switch a {
	case ActionStep:
		return "step"
	case ActionWrap:
		return "wrap"
	case ActionCreate:
		return "create"
	default:
		return "unknown"
	}
}

// MarshalText encodes the action by name
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Plan is the outcome of a navigation decision
type Plan struct {
	Kind      types.CommandKind `json:"kind"`
	Direction types.Direction   `json:"direction"`
	Action    Action            `json:"action"`
	Target    int               `json:"target"`   // Workspace number to focus or move to
	Commands  []string          `json:"commands"` // In execution order
}

// SwitchCommand focuses workspace id
func SwitchCommand(id int) string {
	return fmt.Sprintf("workspace %d", id)
}

// MoveCommand moves the focused container to workspace id
func MoveCommand(id int) string {
	return fmt.Sprintf("move container to workspace %d", id)
}

// commandsFor returns the commands that reach target for kind.
// A move relocates the container first, then follows it.
func commandsFor(kind types.CommandKind, target int) []string {
	if kind == types.KindMove {
		return []string{MoveCommand(target), SwitchCommand(target)}
	}
	return []string{SwitchCommand(target)}
}
