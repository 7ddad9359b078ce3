package state

import (
	"fmt"
	"strings"

	ringerrors "github.com/yourusername/ringnav/internal/errors"
	"github.com/yourusername/ringnav/internal/models"
)

// Build folds the workspace list and the container tree into a GlobalState.
//
// Workspaces are visited in listing order. A ring's current index follows the
// last workspace that is visible or carries ActiveMarker in its name; the
// focused workspace selects the current output and that output's current ring.
func Build(workspaces []models.Workspace, tree *models.Node) (*GlobalState, error) {
	if tree == nil {
		return nil, ringerrors.Inconsistent("empty tree")
	}

	gs := &GlobalState{
		Outputs: make(map[string]*Output),
	}
	focused := false

	for _, ws := range workspaces {
		if ws.Num < 0 {
			return nil, ringerrors.Inconsistent(fmt.Sprintf("workspace %q has no number", ws.Name))
		}

		ringID := RingID(ws.Num)
		if gs.NextRingID <= ringID {
			gs.NextRingID = ringID + 1
		}

		output, ok := gs.Outputs[ws.Output]
		if !ok {
			output = &Output{
				Name:          ws.Output,
				Rings:         make(map[int]*Ring),
				CurrentRingID: ringID,
			}
			gs.Outputs[ws.Output] = output
			gs.OutputOrder = append(gs.OutputOrder, ws.Output)
		}

		ring, ok := output.Rings[ringID]
		if !ok {
			ring = &Ring{ID: ringID}
			output.Rings[ringID] = ring
		}

		node := FindWorkspaceNode(tree, ws.Output, ws.Name)
		if node == nil {
			return nil, ringerrors.Inconsistent(
				fmt.Sprintf("workspace %q on output %q not found in tree", ws.Name, ws.Output))
		}

		if ws.Visible || strings.Contains(ws.Name, ActiveMarker) {
			ring.CurrentIndex = len(ring.Workspaces)
		}
		if ring.NextFreeID <= ws.Num {
			ring.NextFreeID = ws.Num + 1
		}

		ring.Workspaces = append(ring.Workspaces, Workspace{
			ID:            ws.Num,
			Name:          ws.Name,
			ActiveWindows: CountWindows(node),
		})

		if ws.Focused {
			output.CurrentRingID = ringID
			gs.CurrentOutput = ws.Output
			focused = true
		}
	}

	if !focused {
		return nil, ringerrors.Inconsistent("no focused workspace")
	}

	return gs, nil
}
