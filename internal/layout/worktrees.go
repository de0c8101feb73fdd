package layout

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/wgergely/repoctl/internal/rerrors"
)

// Worktrees is an in-repo worktrees layout: `.git` plus `.worktrees/`
// children, one directory per feature branch sibling to the main
// tree. Config is shared from the container root.
type Worktrees struct {
	root         string
	worktreesDir string
	active       string
	naming       NamingStrategy
}

func newWorktrees(root, active string, naming NamingStrategy) *Worktrees {
	return &Worktrees{
		root:         root,
		worktreesDir: filepath.Join(root, worktreesDirName),
		active:       active,
		naming:       naming,
	}
}

func (w *Worktrees) Mode() Mode         { return ModeWorktrees }
func (w *Worktrees) Root() string       { return w.root }
func (w *Worktrees) ConfigRoot() string { return filepath.Join(w.root, repositoryConfigName) }

func (w *Worktrees) ListBranches(ctx context.Context) ([]BranchInfo, error) {
	out, err := runGit(ctx, w.root, "", "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}

	entries := parsePorcelain(out)
	branches := make([]BranchInfo, 0, len(entries))
	for _, e := range entries {
		branches = append(branches, BranchInfo{
			Name:    e.branch,
			Path:    e.path,
			Current: w.active != "" && samePath(e.path, w.active),
		})
	}
	return branches, nil
}

func (w *Worktrees) pathForBranch(ctx context.Context, name string) (string, error) {
	branches, err := w.ListBranches(ctx)
	if err != nil {
		return "", err
	}
	for _, b := range branches {
		if b.Name == name {
			return b.Path, nil
		}
	}
	return "", rerrors.Newf(rerrors.KindNotFound, "no worktree for branch %q", name)
}

// CreateBranch creates a worktree (and its branch, from base,
// defaulting to HEAD) under .worktrees/, named from the branch via
// the configured naming strategy.
func (w *Worktrees) CreateBranch(ctx context.Context, name, base string) (string, error) {
	dirName := w.naming.BranchToDirectory(name)
	path := filepath.Join(w.worktreesDir, dirName)
	if exists(path) {
		return "", rerrors.Newf(rerrors.KindLayout, "worktree already exists at %s", path)
	}

	if err := os.MkdirAll(w.worktreesDir, 0o755); err != nil {
		return "", rerrors.WithPath(rerrors.KindIO, "create worktrees directory", w.worktreesDir, err)
	}

	args := []string{"worktree", "add", path, "-b", name}
	if base != "" {
		args = append(args, base)
	}
	if _, err := runGit(ctx, w.root, "", args...); err != nil {
		return "", err
	}
	return path, nil
}

// DeleteBranch prunes the worktree directory and deletes the branch.
// A branch still checked out elsewhere fails the branch deletion step
// only; the worktree removal itself still succeeds, and the failure
// is logged rather than returned, since the directory is already gone.
func (w *Worktrees) DeleteBranch(ctx context.Context, name string) error {
	path, err := w.pathForBranch(ctx, name)
	if err != nil {
		return err
	}
	if _, err := runGit(ctx, w.root, "", "worktree", "remove", path); err != nil {
		return err
	}
	if _, err := runGit(ctx, w.root, "", "branch", "-D", name); err != nil {
		log.Printf("layout: branch %q still in use elsewhere, worktree removed but branch kept: %v", name, err)
	}
	return nil
}

// SwitchBranch returns the existing worktree path for name without
// creating anything.
func (w *Worktrees) SwitchBranch(ctx context.Context, name string) (string, error) {
	return w.pathForBranch(ctx, name)
}

// RenameBranch renames the branch and moves its worktree directory to
// match the new name under the naming strategy.
func (w *Worktrees) RenameBranch(ctx context.Context, oldName, newName string) error {
	oldPath, err := w.pathForBranch(ctx, oldName)
	if err != nil {
		return err
	}
	newPath := filepath.Join(w.worktreesDir, w.naming.BranchToDirectory(newName))

	if _, err := runGit(ctx, w.root, "", "branch", "-m", oldName, newName); err != nil {
		return err
	}
	if _, err := runGit(ctx, w.root, "", "worktree", "move", oldPath, newPath); err != nil {
		return err
	}
	return nil
}
