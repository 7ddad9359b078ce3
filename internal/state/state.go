package state

const (
	// RingSize is the width of the workspace number band that forms one ring
	RingSize = 100

	// ActiveMarker in a workspace name flags it as the ring's position to return to
	ActiveMarker = "_act"
)

// Workspace is one window manager workspace as seen by ring navigation
type Workspace struct {
	ID            int    `json:"id"`            // Workspace number
	Name          string `json:"name"`          // Workspace name
	ActiveWindows int    `json:"activeWindows"` // Window leaves in the workspace subtree
}

// Ring groups the workspaces of one output that share a hundreds band
type Ring struct {
	ID           int         `json:"id"`           // Workspace number / RingSize
	Workspaces   []Workspace `json:"workspaces"`   // Window manager listing order, not sorted
	CurrentIndex int         `json:"currentIndex"` // Position remembered as current for this ring
	NextFreeID   int         `json:"nextFreeId"`   // Greater than every workspace id in the ring
}

// Output is one physical display and its rings
type Output struct {
	Name          string        `json:"name"`
	Rings         map[int]*Ring `json:"rings"`
	CurrentRingID int           `json:"currentRingId"`
}

// GlobalState is a snapshot of the ring topology built once per invocation.
// It is never modified after Build returns.
type GlobalState struct {
	Outputs       map[string]*Output `json:"outputs"`
	OutputOrder   []string           `json:"outputOrder"` // Output names in first-seen order
	CurrentOutput string             `json:"currentOutput"`
	NextRingID    int                `json:"nextRingId"` // Greater than every ring id on any output
}

// RingID returns the ring a workspace number belongs to
func RingID(num int) int {
	return num / RingSize
}
