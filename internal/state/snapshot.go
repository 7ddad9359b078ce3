package state

import (
	"context"

	ringerrors "github.com/yourusername/ringnav/internal/errors"
	"github.com/yourusername/ringnav/internal/models"
)

// Querier is the read side of the window manager client
type Querier interface {
	GetWorkspaces(ctx context.Context) ([]models.Workspace, error)
	GetTree(ctx context.Context) (*models.Node, error)
}

// Fetch lists workspaces, then reads the tree, then builds the snapshot
func Fetch(ctx context.Context, q Querier) (*GlobalState, error) {
	workspaces, err := q.GetWorkspaces(ctx)
	if err != nil {
		return nil, ringerrors.QueryFailed("get_workspaces", err)
	}

	tree, err := q.GetTree(ctx)
	if err != nil {
		return nil, ringerrors.QueryFailed("get_tree", err)
	}

	return Build(workspaces, tree)
}
