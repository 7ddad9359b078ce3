package testutil

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/ringnav/internal/models"
	"github.com/yourusername/ringnav/internal/state"
)

// WS describes one workspace of a fake window manager session
type WS struct {
	Output  string
	Num     int
	Name    string // Defaults to the number
	Visible bool
	Focused bool
	Windows int
}

func (w WS) name() string {
	if w.Name != "" {
		return w.Name
	}
	return strconv.Itoa(w.Num)
}

func (w WS) output() string {
	if w.Output != "" {
		return w.Output
	}
	return "eDP-1"
}

// Workspaces returns the GET_WORKSPACES reply for the session
func Workspaces(list ...WS) []models.Workspace {
	out := make([]models.Workspace, 0, len(list))
	for i, w := range list {
		out = append(out, models.Workspace{
			ID:      int64(100 + i),
			Num:     w.Num,
			Name:    w.name(),
			Visible: w.Visible,
			Focused: w.Focused,
			Output:  w.output(),
		})
	}
	return out
}

// Tree returns a GET_TREE reply shaped like i3's: root, outputs, content
// containers, workspaces. The first window of a workspace is a direct child,
// the rest sit in a nested split container.
func Tree(list ...WS) *models.Node {
	var nextID int64 = 1
	id := func() int64 {
		nextID++
		return nextID
	}
	str := func(s string) *string { return &s }

	root := &models.Node{ID: 1, Name: str("root"), Type: models.NodeRoot}
	scratch := &models.Node{ID: id(), Name: str("__i3"), Type: models.NodeOutput}
	root.Nodes = append(root.Nodes, scratch)

	contents := map[string]*models.Node{}
	for _, w := range list {
		content, ok := contents[w.output()]
		if !ok {
			output := &models.Node{ID: id(), Name: str(w.output()), Type: models.NodeOutput}
			dock := &models.Node{ID: id(), Name: str("topdock"), Type: models.NodeDockarea}
			content = &models.Node{ID: id(), Name: str("content"), Type: models.NodeCon}
			output.Nodes = []*models.Node{dock, content}
			root.Nodes = append(root.Nodes, output)
			contents[w.output()] = content
		}

		ws := &models.Node{ID: id(), Name: str(w.name()), Type: models.NodeWorkspace, Output: str(w.output())}
		if w.Windows > 0 {
			win := int64(0x800000 + id())
			ws.Nodes = append(ws.Nodes, &models.Node{ID: id(), Type: models.NodeCon, Window: &win})
		}
		if w.Windows > 1 {
			split := &models.Node{ID: id(), Type: models.NodeCon}
			for i := 1; i < w.Windows; i++ {
				split.Nodes = append(split.Nodes, &models.Node{ID: id(), Type: models.NodeCon, AppID: str("foot")})
			}
			ws.Nodes = append(ws.Nodes, split)
		}
		content.Nodes = append(content.Nodes, ws)
	}

	return root
}

// BuildState builds a GlobalState from the session and fails the test on error
func BuildState(t *testing.T, list ...WS) *state.GlobalState {
	t.Helper()
	gs, err := state.Build(Workspaces(list...), Tree(list...))
	require.NoError(t, err)
	return gs
}
