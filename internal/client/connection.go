package client

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/yourusername/ringnav/internal/models"
)

// Connection manages the Unix domain socket connection to the window manager
type Connection struct {
	socketPath string
	conn       net.Conn
	timeout    time.Duration
}

// NewConnection creates a new connection instance
func NewConnection(socketPath string, timeout time.Duration) *Connection {
	return &Connection{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// Connect establishes the Unix domain socket connection
func (c *Connection) Connect(ctx context.Context) error {
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect to socket %s: %w", c.socketPath, err)
	}
	c.conn = conn
	return nil
}

// Close closes the connection
func (c *Connection) Close() error {
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

// SendRequest writes one message and waits for the reply of the same type
func (c *Connection) SendRequest(ctx context.Context, req *models.Message) (*models.Message, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("not connected")
	}

	// Apply timeout if not already set
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("failed to set deadline: %w", err)
	}

	if _, err := c.conn.Write(req.Encode()); err != nil {
		return nil, fmt.Errorf("failed to write %s request: %w", req.Type, err)
	}

	// Read reply with context cancellation support
	respChan := make(chan *models.Message, 1)
	errChan := make(chan error, 1)

	conn := c.conn
	go func() {
		reply, err := models.ReadMessage(conn)
		if err != nil {
			errChan <- fmt.Errorf("failed to read %s reply: %w", req.Type, err)
			return
		}

		if reply.Type != req.Type {
			errChan <- fmt.Errorf("expected %s reply, got %s", req.Type, reply.Type)
			return
		}

		respChan <- reply
	}()

	select {
	case <-ctx.Done():
		// The stream is mid-message; it cannot be reused
		c.Close()
		return nil, fmt.Errorf("request cancelled or timed out: %w", ctx.Err())
	case err := <-errChan:
		return nil, err
	case reply := <-respChan:
		return reply, nil
	}
}

// IsConnected returns true if the connection is established
func (c *Connection) IsConnected() bool {
	return c.conn != nil
}
