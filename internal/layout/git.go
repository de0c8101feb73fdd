package layout

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/wgergely/repoctl/internal/rerrors"
)

// runGit runs git with args in workDir, optionally overriding the git
// directory (used by the Container layout, whose external .gt
// database git cannot auto-discover from a branch's sibling
// directory). This is the same exec.Command subprocess idiom the
// donor repository identifier used to shell out to git rather than
// link against a Go git binding.
func runGit(ctx context.Context, workDir, gitDir string, args ...string) (string, error) {
	full := args
	if gitDir != "" {
		full = append([]string{"--git-dir=" + gitDir, "--work-tree=" + workDir}, args...)
	}

	cmd := exec.CommandContext(ctx, "git", full...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", rerrors.Wrap(rerrors.KindGit, "git "+strings.Join(args, " ")+" failed: "+strings.TrimSpace(stderr.String()), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// porcelainEntry is one stanza of `git worktree list --porcelain`.
type porcelainEntry struct {
	path   string
	branch string
}

// parsePorcelain parses the stanza-per-worktree output of
// `git worktree list --porcelain`.
func parsePorcelain(out string) []porcelainEntry {
	var entries []porcelainEntry
	var cur porcelainEntry

	flush := func() {
		if cur.path != "" {
			entries = append(entries, cur)
		}
		cur = porcelainEntry{}
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "worktree "):
			cur.path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "branch "):
			cur.branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		}
	}
	flush()

	return entries
}
