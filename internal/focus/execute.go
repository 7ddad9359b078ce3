package focus

import (
	"context"

	ringerrors "github.com/yourusername/ringnav/internal/errors"
)

// CommandRunner is the write side of the window manager client
type CommandRunner interface {
	RunCommand(ctx context.Context, command string) error
}

// Execute runs commands in order and stops at the first failure.
// Commands that already succeeded are not undone.
func Execute(ctx context.Context, r CommandRunner, commands []string) error {
	for _, command := range commands {
		if err := r.RunCommand(ctx, command); err != nil {
			return ringerrors.CommandFailed(command, err)
		}
	}
	return nil
}
