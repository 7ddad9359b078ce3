package models

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Magic prefixes every message exchanged over the i3/sway IPC socket
const Magic = "i3-ipc"

// HeaderSize is the fixed length of a message header: magic, payload length, type
const HeaderSize = len(Magic) + 4 + 4

// MessageType identifies the request (and its reply) on the wire
type MessageType uint32

const (
	MsgRunCommand    MessageType = 0
	MsgGetWorkspaces MessageType = 1
	MsgGetTree       MessageType = 4
	MsgGetVersion    MessageType = 7
)

// String returns the protocol name of a MessageType
func (t MessageType) String() string {
	switch t {
	case MsgRunCommand:
		return "RUN_COMMAND"
	case MsgGetWorkspaces:
		return "GET_WORKSPACES"
	case MsgGetTree:
		return "GET_TREE"
	case MsgGetVersion:
		return "GET_VERSION"
	default:
		return fmt.Sprintf("TYPE(%d)", uint32(t))
	}
}

// Message is a single framed IPC message
type Message struct {
	Type    MessageType
	Payload []byte
}

// NewRequest creates a request message carrying a raw payload
func NewRequest(t MessageType, payload string) *Message {
	return &Message{
		Type:    t,
		Payload: []byte(payload),
	}
}

// Encode serializes the message: magic, length and type in native byte order, then payload
func (m *Message) Encode() []byte {
	buf := make([]byte, HeaderSize+len(m.Payload))
	copy(buf, Magic)
	binary.NativeEndian.PutUint32(buf[len(Magic):], uint32(len(m.Payload)))
	binary.NativeEndian.PutUint32(buf[len(Magic)+4:], uint32(m.Type))
	copy(buf[HeaderSize:], m.Payload)
	return buf
}

// ReadMessage reads one framed message from r
func ReadMessage(r io.Reader) (*Message, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if !bytes.Equal(header[:len(Magic)], []byte(Magic)) {
		return nil, fmt.Errorf("invalid magic %q", header[:len(Magic)])
	}

	length := binary.NativeEndian.Uint32(header[len(Magic):])
	msgType := binary.NativeEndian.Uint32(header[len(Magic)+4:])

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("failed to read %d byte payload: %w", length, err)
	}

	return &Message{Type: MessageType(msgType), Payload: payload}, nil
}
