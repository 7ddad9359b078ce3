package state

import "github.com/yourusername/ringnav/internal/models"

// FindWorkspaceNode returns the workspace container named name below the
// top-level branch for output, or nil.
func FindWorkspaceNode(root *models.Node, output, name string) *models.Node {
	if root == nil {
		return nil
	}

	for _, branch := range root.Nodes {
		if branch.Name == nil || *branch.Name != output {
			continue
		}
		if node := findWorkspace(branch, name); node != nil {
			return node
		}
	}

	return nil
}

func findWorkspace(node *models.Node, name string) *models.Node {
	for _, child := range node.Nodes {
		if child.Type == models.NodeWorkspace {
			if child.GetName() == name {
				return child
			}
			continue
		}
		if found := findWorkspace(child, name); found != nil {
			return found
		}
	}
	return nil
}

// CountWindows counts window leaves among all tiling descendants of node
func CountWindows(node *models.Node) int {
	count := 0
	for _, child := range node.Nodes {
		if child.IsWindow() {
			count++
		}
		count += CountWindows(child)
	}
	return count
}
