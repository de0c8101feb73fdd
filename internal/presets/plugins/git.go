package plugins

import (
	"context"
	"os/exec"
	"time"

	"github.com/wgergely/repoctl/internal/rerrors"
)

const cloneTimeout = 2 * time.Minute

// cloneRepo shallow-clones repoURL at the given ref into dir.
func cloneRepo(ctx context.Context, repoURL, dir, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, cloneTimeout)
	defer cancel()

	args := []string{"clone", "--depth", "1"}
	if ref != "" {
		args = append(args, "--branch", ref)
	}
	args = append(args, repoURL, dir)

	cmd := exec.CommandContext(ctx, "git", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return rerrors.Wrap(rerrors.KindGit, "git clone failed: "+string(out), err)
	}
	return nil
}
