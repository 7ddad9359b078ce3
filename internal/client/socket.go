package client

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sys/unix"
)

// SocketResolver locates the IPC socket of the running window manager
type SocketResolver struct {
	Getenv func(string) string
	Run    func(ctx context.Context, name string, args ...string) ([]byte, error)
	Glob   func(pattern string) ([]string, error)
	UID    int
}

// DefaultResolver uses the process environment, the i3/sway binaries and the runtime directory
func DefaultResolver() *SocketResolver {
	return &SocketResolver{
		Getenv: os.Getenv,
		Run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
		Glob: filepath.Glob,
		UID:  unix.Getuid(),
	}
}

// ResolveSocketPath finds the socket with the default resolver
func ResolveSocketPath(ctx context.Context) (string, error) {
	return DefaultResolver().Resolve(ctx)
}

// Resolve checks, in order: $I3SOCK, $SWAYSOCK, `i3 --get-socketpath`,
// `sway --get-socketpath` and the sway socket under /run/user/<uid>.
func (r *SocketResolver) Resolve(ctx context.Context) (string, error) {
	for _, env := range []string{"I3SOCK", "SWAYSOCK"} {
		if path := strings.TrimSpace(r.Getenv(env)); path != "" {
			return path, nil
		}
	}

	for _, bin := range []string{"i3", "sway"} {
		out, err := r.Run(ctx, bin, "--get-socketpath")
		if err != nil {
			continue
		}
		if path := strings.TrimSpace(string(out)); path != "" {
			return path, nil
		}
	}

	pattern := fmt.Sprintf("/run/user/%d/sway-ipc.%d.*.sock", r.UID, r.UID)
	matches, err := r.Glob(pattern)
	if err == nil && len(matches) > 0 {
		sort.Strings(matches)
		return matches[0], nil
	}

	return "", fmt.Errorf("no window manager socket found: set I3SOCK or SWAYSOCK, or pass --socket")
}
