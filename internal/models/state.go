package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Workspace is one entry of the GET_WORKSPACES reply
type Workspace struct {
	ID      int64  `json:"id"`
	Num     int    `json:"num"` // -1 for workspaces without a leading number
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
	Urgent  bool   `json:"urgent"`
	Output  string `json:"output"`
}

// NodeType tags a tree node
type NodeType string

const (
	NodeRoot        NodeType = "root"
	NodeOutput      NodeType = "output"
	NodeCon         NodeType = "con"
	NodeFloatingCon NodeType = "floating_con"
	NodeWorkspace   NodeType = "workspace"
	NodeDockarea    NodeType = "dockarea"
)

// Node is a container in the GET_TREE reply
type Node struct {
	ID            int64    `json:"id"`
	Name          *string  `json:"name"`
	Type          NodeType `json:"type"`
	Output        *string  `json:"output,omitempty"`
	Focused       bool     `json:"focused"`
	Window        *int64   `json:"window"`           // X11 window id
	AppID         *string  `json:"app_id,omitempty"` // sway: native Wayland client
	Nodes         []*Node  `json:"nodes"`
	FloatingNodes []*Node  `json:"floating_nodes"`
}

// GetName returns the node name or an empty string
func (n *Node) GetName() string {
	if n.Name != nil {
		return *n.Name
	}
	return ""
}

// IsWindow returns true if the node is a window leaf
func (n *Node) IsWindow() bool {
	return n.Window != nil || n.AppID != nil
}

// CommandResult is one entry of the RUN_COMMAND reply
type CommandResult struct {
	Success    bool   `json:"success"`
	ParseError bool   `json:"parse_error,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Version is the GET_VERSION reply
type Version struct {
	Major                int    `json:"major"`
	Minor                int    `json:"minor"`
	Patch                int    `json:"patch"`
	HumanReadable        string `json:"human_readable"`
	LoadedConfigFileName string `json:"loaded_config_file_name"`
}

// ParseWorkspaces parses a GET_WORKSPACES payload
func ParseWorkspaces(payload []byte) ([]Workspace, error) {
	var workspaces []Workspace
	if err := json.Unmarshal(payload, &workspaces); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workspaces: %w", err)
	}
	return workspaces, nil
}

// ParseTree parses a GET_TREE payload
func ParseTree(payload []byte) (*Node, error) {
	var root Node
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tree: %w", err)
	}
	return &root, nil
}

// ParseCommandResults parses a RUN_COMMAND payload and returns an error
// describing every failed command
func ParseCommandResults(payload []byte) ([]CommandResult, error) {
	var results []CommandResult
	if err := json.Unmarshal(payload, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal command results: %w", err)
	}

	var failures []string
	for _, r := range results {
		if !r.Success {
			msg := r.Error
			if msg == "" {
				msg = "unknown error"
			}
			failures = append(failures, msg)
		}
	}
	if len(failures) > 0 {
		return results, fmt.Errorf("command failed: %s", strings.Join(failures, "; "))
	}

	return results, nil
}

// ParseVersion parses a GET_VERSION payload
func ParseVersion(payload []byte) (*Version, error) {
	var v Version
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal version: %w", err)
	}
	return &v, nil
}
