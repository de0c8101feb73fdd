package layout

import (
	"context"
	"log"
	"path/filepath"

	"github.com/wgergely/repoctl/internal/rerrors"
)

// Container is a container directory sharing one external git
// database (`.gt/`) across `main/` and per-branch sibling
// directories. Git cannot auto-discover `.gt` from a branch
// directory, so every git invocation explicitly overrides the git
// directory and work tree.
type Container struct {
	root   string
	gitDir string
	active string
	naming NamingStrategy
}

func newContainer(root, active string, naming NamingStrategy) *Container {
	return &Container{root: root, gitDir: filepath.Join(root, gtDirName), active: active, naming: naming}
}

func (c *Container) Mode() Mode         { return ModeContainer }
func (c *Container) Root() string       { return c.root }
func (c *Container) ConfigRoot() string { return filepath.Join(c.root, repositoryConfigName) }

func (c *Container) mainPath() string { return filepath.Join(c.root, mainDirName) }

func (c *Container) ListBranches(ctx context.Context) ([]BranchInfo, error) {
	out, err := runGit(ctx, c.mainPath(), c.gitDir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}

	entries := parsePorcelain(out)
	branches := make([]BranchInfo, 0, len(entries))
	for _, e := range entries {
		branches = append(branches, BranchInfo{
			Name:    e.branch,
			Path:    e.path,
			Current: c.active != "" && samePath(e.path, c.active),
		})
	}
	return branches, nil
}

func (c *Container) pathForBranch(ctx context.Context, name string) (string, error) {
	branches, err := c.ListBranches(ctx)
	if err != nil {
		return "", err
	}
	for _, b := range branches {
		if b.Name == name {
			return b.Path, nil
		}
	}
	return "", rerrors.Newf(rerrors.KindNotFound, "no branch directory for %q", name)
}

// CreateBranch adds a new worktree directly under the container root,
// sibling to main/, named from the branch via the naming strategy.
func (c *Container) CreateBranch(ctx context.Context, name, base string) (string, error) {
	path := filepath.Join(c.root, c.naming.BranchToDirectory(name))
	if exists(path) {
		return "", rerrors.Newf(rerrors.KindLayout, "branch directory already exists at %s", path)
	}

	args := []string{"worktree", "add", path, "-b", name}
	if base != "" {
		args = append(args, base)
	}
	if _, err := runGit(ctx, c.mainPath(), c.gitDir, args...); err != nil {
		return "", err
	}
	return path, nil
}

// DeleteBranch removes the branch's sibling directory and deletes the
// branch; as with Worktrees, a branch still in use elsewhere only
// logs the branch-deletion failure instead of returning it.
func (c *Container) DeleteBranch(ctx context.Context, name string) error {
	path, err := c.pathForBranch(ctx, name)
	if err != nil {
		return err
	}
	if _, err := runGit(ctx, c.mainPath(), c.gitDir, "worktree", "remove", path); err != nil {
		return err
	}
	if _, err := runGit(ctx, c.mainPath(), c.gitDir, "branch", "-D", name); err != nil {
		log.Printf("layout: branch %q still in use elsewhere, directory removed but branch kept: %v", name, err)
	}
	return nil
}

func (c *Container) SwitchBranch(ctx context.Context, name string) (string, error) {
	return c.pathForBranch(ctx, name)
}

func (c *Container) RenameBranch(ctx context.Context, oldName, newName string) error {
	oldPath, err := c.pathForBranch(ctx, oldName)
	if err != nil {
		return err
	}
	newPath := filepath.Join(c.root, c.naming.BranchToDirectory(newName))

	if _, err := runGit(ctx, c.mainPath(), c.gitDir, "branch", "-m", oldName, newName); err != nil {
		return err
	}
	if _, err := runGit(ctx, c.mainPath(), c.gitDir, "worktree", "move", oldPath, newPath); err != nil {
		return err
	}
	return nil
}
