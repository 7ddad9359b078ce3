package state

import (
	"fmt"
	"sort"
)

// GetCurrentOutput returns the output holding the focused workspace
func (gs *GlobalState) GetCurrentOutput() (*Output, error) {
	output, ok := gs.Outputs[gs.CurrentOutput]
	if !ok {
		return nil, fmt.Errorf("current output %q not found", gs.CurrentOutput)
	}
	return output, nil
}

// GetCurrentRing returns the output's current ring
func (o *Output) GetCurrentRing() (*Ring, error) {
	ring, ok := o.Rings[o.CurrentRingID]
	if !ok {
		return nil, fmt.Errorf("ring %d not found on output %s", o.CurrentRingID, o.Name)
	}
	return ring, nil
}

// SortedRingIDs returns the output's ring ids in ascending order
func (o *Output) SortedRingIDs() []int {
	ids := make([]int, 0, len(o.Rings))
	for id := range o.Rings {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// GetCurrentWorkspace returns the workspace at the ring's current index
func (r *Ring) GetCurrentWorkspace() (Workspace, error) {
	if r.CurrentIndex < 0 || r.CurrentIndex >= len(r.Workspaces) {
		return Workspace{}, fmt.Errorf("ring %d has no workspace at index %d", r.ID, r.CurrentIndex)
	}
	return r.Workspaces[r.CurrentIndex], nil
}

// LastIndex returns the index of the ring's last listed workspace
func (r *Ring) LastIndex() int {
	return len(r.Workspaces) - 1
}

// GetWorkspaceIDs returns the workspace ids in listing order
func (r *Ring) GetWorkspaceIDs() []int {
	ids := make([]int, len(r.Workspaces))
	for i, ws := range r.Workspaces {
		ids[i] = ws.ID
	}
	return ids
}

// WorkspaceCount returns the number of workspaces across all outputs
func (gs *GlobalState) WorkspaceCount() int {
	count := 0
	for _, output := range gs.Outputs {
		for _, ring := range output.Rings {
			count += len(ring.Workspaces)
		}
	}
	return count
}
