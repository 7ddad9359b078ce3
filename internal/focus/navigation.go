package focus

import (
	"fmt"

	"github.com/yourusername/ringnav/internal/state"
	"github.com/yourusername/ringnav/internal/types"
)

// emptyThreshold is the highest window count at which the current workspace
// counts as empty at a right/down boundary. A move still counts the window it
// is about to relocate.
func emptyThreshold(kind types.CommandKind) int {
	if kind == types.KindMove {
		return 1
	}
	return 0
}

// Decide computes the commands for one switch or move in direction.
//
// Left and up at the edge always create a new workspace or ring. Right and
// down at the edge wrap to the first workspace or ring when the current
// workspace is empty, and create otherwise.
func Decide(gs *state.GlobalState, direction types.Direction, kind types.CommandKind) (*Plan, error) {
	output, err := gs.GetCurrentOutput()
	if err != nil {
		return nil, err
	}
	ring, err := output.GetCurrentRing()
	if err != nil {
		return nil, err
	}
	current, err := ring.GetCurrentWorkspace()
	if err != nil {
		return nil, err
	}

	idx := ring.CurrentIndex
	empty := current.ActiveWindows <= emptyThreshold(kind)

	var target int
	var action Action

	switch direction {
	case types.DirLeft:
		if idx == 0 {
			target, action = ring.NextFreeID, ActionCreate
		} else {
			target, action = ring.Workspaces[idx-1].ID, ActionStep
		}

	case types.DirRight:
		if idx == ring.LastIndex() {
			if empty {
				target, action = ring.Workspaces[0].ID, ActionWrap
			} else {
				target, action = ring.NextFreeID, ActionCreate
			}
		} else {
			target, action = ring.Workspaces[idx+1].ID, ActionStep
		}

	case types.DirDown:
		ringIDs := output.SortedRingIDs()
		pos := indexOf(ringIDs, output.CurrentRingID)
		if pos == len(ringIDs)-1 {
			if empty {
				target, err = rememberedWorkspace(output, ringIDs[0])
				action = ActionWrap
			} else {
				target, action = newRingWorkspace(gs), ActionCreate
			}
		} else {
			target, err = rememberedWorkspace(output, ringIDs[pos+1])
			action = ActionStep
		}

	case types.DirUp:
		ringIDs := output.SortedRingIDs()
		pos := indexOf(ringIDs, output.CurrentRingID)
		if pos == 0 {
			target, action = newRingWorkspace(gs), ActionCreate
		} else {
			target, err = rememberedWorkspace(output, ringIDs[pos-1])
			action = ActionStep
		}

	default:
		return nil, fmt.Errorf("unknown direction %d", direction)
	}

	if err != nil {
		return nil, err
	}

	return &Plan{
		Kind:      kind,
		Direction: direction,
		Action:    action,
		Target:    target,
		Commands:  commandsFor(kind, target),
	}, nil
}

// rememberedWorkspace returns the id of the workspace at a ring's current index
func rememberedWorkspace(output *state.Output, ringID int) (int, error) {
	ring, ok := output.Rings[ringID]
	if !ok {
		return 0, fmt.Errorf("ring %d not found on output %s", ringID, output.Name)
	}
	ws, err := ring.GetCurrentWorkspace()
	if err != nil {
		return 0, err
	}
	return ws.ID, nil
}

// newRingWorkspace returns the first workspace number of a ring that does not exist yet
func newRingWorkspace(gs *state.GlobalState) int {
	return gs.NextRingID * state.RingSize
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
