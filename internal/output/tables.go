package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/ringnav/internal/focus"
	"github.com/yourusername/ringnav/internal/state"
)

// PrintRingsTable prints every output's rings and workspaces.
// Outputs are listed in first-seen order, rings by id, workspaces in listing order.
// A "*" marks the current workspace of each ring and the current ring of each output.
func PrintRingsTable(w io.Writer, gs *state.GlobalState) {
	table := tablewriter.NewWriter(w)
	table.Header("Output", "Ring", "Workspace", "Name", "Windows", "Current", "Next Free")

	for _, name := range gs.OutputOrder {
		output := gs.Outputs[name]
		outputLabel := name
		if name == gs.CurrentOutput {
			outputLabel = name + " *"
		}

		for _, ringID := range output.SortedRingIDs() {
			ring := output.Rings[ringID]
			ringLabel := strconv.Itoa(ringID)
			if ringID == output.CurrentRingID {
				ringLabel += " *"
			}

			for i, ws := range ring.Workspaces {
				current := ""
				if i == ring.CurrentIndex {
					current = "*"
				}
				nextFree := ""
				if i == 0 {
					nextFree = strconv.Itoa(ring.NextFreeID)
				}

				table.Append(
					outputLabel,
					ringLabel,
					strconv.Itoa(ws.ID),
					truncate(ws.Name, 30),
					strconv.Itoa(ws.ActiveWindows),
					current,
					nextFree,
				)
			}
		}
	}

	table.Render()
	fmt.Fprintf(w, "\nNext ring: %d (workspace %d)\n", gs.NextRingID, gs.NextRingID*state.RingSize)
}

// PrintPlan prints a navigation plan
func PrintPlan(w io.Writer, plan *focus.Plan) {
	table := tablewriter.NewWriter(w)
	table.Header("Step", "Command")

	for i, cmd := range plan.Commands {
		table.Append(strconv.Itoa(i+1), cmd)
	}

	table.Render()
	fmt.Fprintf(w, "%s %s: %s workspace %d\n", plan.Kind, plan.Direction, plan.Action, plan.Target)
}

// FormatCommands joins commands the way i3-msg accepts a command list
func FormatCommands(commands []string) string {
	return strings.Join(commands, "; ")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
