package client

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/ringnav/internal/models"
)

const (
	DefaultTimeout = 5 * time.Second
)

// Client is a synchronous request/reply client for the i3/sway IPC socket
type Client struct {
	socketPath string
	timeout    time.Duration
	conn       *Connection
}

// NewClient creates a new window manager client.
// An empty socketPath is resolved with ResolveSocketPath on Connect.
func NewClient(socketPath string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// SocketPath returns the socket in use, empty until resolved
func (c *Client) SocketPath() string {
	return c.socketPath
}

// Connect resolves the socket path if needed and establishes the connection
func (c *Client) Connect(ctx context.Context) error {
	if c.socketPath == "" {
		path, err := ResolveSocketPath(ctx)
		if err != nil {
			return err
		}
		c.socketPath = path
	}

	conn := NewConnection(c.socketPath, c.timeout)
	if err := conn.Connect(ctx); err != nil {
		return err
	}
	c.conn = conn
	return nil
}

// Close closes the connection
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// request is a helper to send a request and get the reply payload
func (c *Client) request(ctx context.Context, t models.MessageType, payload string) ([]byte, error) {
	if c.conn == nil || !c.conn.IsConnected() {
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}

	reply, err := c.conn.SendRequest(ctx, models.NewRequest(t, payload))
	if err != nil {
		return nil, err
	}
	return reply.Payload, nil
}

// GetWorkspaces returns the flat workspace list in window manager order
func (c *Client) GetWorkspaces(ctx context.Context) ([]models.Workspace, error) {
	payload, err := c.request(ctx, models.MsgGetWorkspaces, "")
	if err != nil {
		return nil, err
	}
	return models.ParseWorkspaces(payload)
}

// GetTree returns the root of the container tree
func (c *Client) GetTree(ctx context.Context) (*models.Node, error) {
	payload, err := c.request(ctx, models.MsgGetTree, "")
	if err != nil {
		return nil, err
	}
	return models.ParseTree(payload)
}

// RunCommand runs a single command and fails if the window manager rejects it
func (c *Client) RunCommand(ctx context.Context, command string) error {
	payload, err := c.request(ctx, models.MsgRunCommand, command)
	if err != nil {
		return err
	}
	if _, err := models.ParseCommandResults(payload); err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}

// GetVersion returns the window manager version
func (c *Client) GetVersion(ctx context.Context) (*models.Version, error) {
	payload, err := c.request(ctx, models.MsgGetVersion, "")
	if err != nil {
		return nil, err
	}
	return models.ParseVersion(payload)
}
