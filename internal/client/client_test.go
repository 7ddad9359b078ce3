package client

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/ringnav/internal/models"
)

// fakeWM serves canned replies over a real unix socket
type fakeWM struct {
	t        *testing.T
	path     string
	listener net.Listener

	mu       sync.Mutex
	replies  map[models.MessageType]string
	commands []string
	// replyType overrides the type of every reply when non-nil
	replyType *models.MessageType
	// silent makes the server read requests without answering
	silent bool
}

func newFakeWM(t *testing.T) *fakeWM {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wm.sock")
	l, err := net.Listen("unix", path)
	require.NoError(t, err)

	wm := &fakeWM{
		t:        t,
		path:     path,
		listener: l,
		replies: map[models.MessageType]string{
			models.MsgGetWorkspaces: `[{"num": 1, "name": "1", "visible": true, "focused": true, "output": "eDP-1"}]`,
			models.MsgGetTree:       `{"name": "root", "type": "root", "nodes": []}`,
			models.MsgRunCommand:    `[{"success": true}]`,
			models.MsgGetVersion:    `{"major": 1, "minor": 9, "human_readable": "sway version 1.9"}`,
		},
	}
	t.Cleanup(func() { l.Close() })
	go wm.serve()
	return wm
}

func (w *fakeWM) serve() {
	for {
		conn, err := w.listener.Accept()
		if err != nil {
			return
		}
		go w.handle(conn)
	}
}

func (w *fakeWM) handle(conn net.Conn) {
	defer conn.Close()
	for {
		req, err := models.ReadMessage(conn)
		if err != nil {
			return
		}

		w.mu.Lock()
		if req.Type == models.MsgRunCommand {
			w.commands = append(w.commands, string(req.Payload))
		}
		reply := w.replies[req.Type]
		replyType := req.Type
		if w.replyType != nil {
			replyType = *w.replyType
		}
		silent := w.silent
		w.mu.Unlock()

		if silent {
			continue
		}
		if _, err := conn.Write(models.NewRequest(replyType, reply).Encode()); err != nil {
			return
		}
	}
}

func (w *fakeWM) setReply(t models.MessageType, payload string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.replies[t] = payload
}

func (w *fakeWM) received() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.commands...)
}

func TestClientQueries(t *testing.T) {
	wm := newFakeWM(t)
	c := NewClient(wm.path, time.Second)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	workspaces, err := c.GetWorkspaces(ctx)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
	assert.Equal(t, "eDP-1", workspaces[0].Output)
	assert.True(t, workspaces[0].Focused)

	tree, err := c.GetTree(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.NodeRoot, tree.Type)

	version, err := c.GetVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sway version 1.9", version.HumanReadable)
}

func TestClientRunCommandInOrder(t *testing.T) {
	wm := newFakeWM(t)
	c := NewClient(wm.path, time.Second)
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.RunCommand(ctx, "move container to workspace 7"))
	require.NoError(t, c.RunCommand(ctx, "workspace 7"))

	assert.Equal(t, []string{"move container to workspace 7", "workspace 7"}, wm.received())
}

func TestClientRunCommandRejected(t *testing.T) {
	wm := newFakeWM(t)
	wm.setReply(models.MsgRunCommand, `[{"success": false, "parse_error": true, "error": "Unknown command"}]`)

	c := NewClient(wm.path, time.Second)
	defer c.Close()

	err := c.RunCommand(context.Background(), "workspace x y z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown command")
	assert.Contains(t, err.Error(), "workspace x y z")
}

func TestClientMismatchedReplyType(t *testing.T) {
	wm := newFakeWM(t)
	wrong := models.MsgGetVersion
	wm.mu.Lock()
	wm.replyType = &wrong
	wm.mu.Unlock()

	c := NewClient(wm.path, time.Second)
	defer c.Close()

	_, err := c.GetTree(context.Background())
	assert.ErrorContains(t, err, "expected GET_TREE reply, got GET_VERSION")
}

func TestClientTimeout(t *testing.T) {
	wm := newFakeWM(t)
	wm.mu.Lock()
	wm.silent = true
	wm.mu.Unlock()

	c := NewClient(wm.path, 50*time.Millisecond)
	defer c.Close()

	start := time.Now()
	_, err := c.GetWorkspaces(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClientContextCancelled(t *testing.T) {
	wm := newFakeWM(t)
	wm.mu.Lock()
	wm.silent = true
	wm.mu.Unlock()

	c := NewClient(wm.path, 10*time.Second)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetTree(ctx)
	require.Error(t, err)
}

func TestClientConnectFailure(t *testing.T) {
	c := NewClient(filepath.Join(t.TempDir(), "missing.sock"), time.Second)
	err := c.Connect(context.Background())
	assert.ErrorContains(t, err, "failed to connect to socket")
}

func TestSendRequestWithoutConnect(t *testing.T) {
	conn := NewConnection("/nonexistent", time.Second)
	_, err := conn.SendRequest(context.Background(), models.NewRequest(models.MsgGetTree, ""))
	assert.ErrorContains(t, err, "not connected")
	assert.False(t, conn.IsConnected())
	assert.NoError(t, conn.Close())
}

func TestSocketResolverOrder(t *testing.T) {
	noRun := func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("not installed")
	}
	noGlob := func(string) ([]string, error) { return nil, nil }

	tests := []struct {
		name    string
		env     map[string]string
		run     func(ctx context.Context, name string, args ...string) ([]byte, error)
		glob    func(string) ([]string, error)
		want    string
		wantErr bool
	}{
		{
			name: "I3SOCK wins",
			env:  map[string]string{"I3SOCK": "/run/user/1000/i3/ipc-socket.1", "SWAYSOCK": "/tmp/sway.sock"},
			run:  noRun,
			glob: noGlob,
			want: "/run/user/1000/i3/ipc-socket.1",
		},
		{
			name: "SWAYSOCK",
			env:  map[string]string{"SWAYSOCK": "/tmp/sway.sock"},
			run:  noRun,
			glob: noGlob,
			want: "/tmp/sway.sock",
		},
		{
			name: "sway binary",
			env:  map[string]string{},
			run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
				if name == "sway" {
					return []byte("/run/user/1000/sway-ipc.1000.42.sock\n"), nil
				}
				return nil, errors.New("not installed")
			},
			glob: noGlob,
			want: "/run/user/1000/sway-ipc.1000.42.sock",
		},
		{
			name: "runtime dir glob",
			env:  map[string]string{},
			run:  noRun,
			glob: func(pattern string) ([]string, error) {
				if pattern != "/run/user/1000/sway-ipc.1000.*.sock" {
					return nil, nil
				}
				return []string{"/run/user/1000/sway-ipc.1000.99.sock", "/run/user/1000/sway-ipc.1000.12.sock"}, nil
			},
			want: "/run/user/1000/sway-ipc.1000.12.sock",
		},
		{
			name:    "nothing found",
			env:     map[string]string{},
			run:     noRun,
			glob:    noGlob,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &SocketResolver{
				Getenv: func(k string) string { return tt.env[k] },
				Run:    tt.run,
				Glob:   tt.glob,
				UID:    1000,
			}
			got, err := r.Resolve(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
