package layout

import (
	"context"
	"path/filepath"

	"github.com/wgergely/repoctl/internal/rerrors"
)

// Standard is a single working tree with one active branch: `.git` at
// root, configuration at `<root>/.repository`.
type Standard struct {
	root string
}

func newStandard(root string) *Standard { return &Standard{root: root} }

func (s *Standard) Mode() Mode         { return ModeStandard }
func (s *Standard) Root() string       { return s.root }
func (s *Standard) ConfigRoot() string { return filepath.Join(s.root, repositoryConfigName) }

func (s *Standard) currentBranch(ctx context.Context) (string, error) {
	return runGit(ctx, s.root, "", "rev-parse", "--abbrev-ref", "HEAD")
}

func (s *Standard) ListBranches(ctx context.Context) ([]BranchInfo, error) {
	current, err := s.currentBranch(ctx)
	if err != nil {
		return nil, err
	}

	out, err := runGit(ctx, s.root, "", "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}

	var branches []BranchInfo
	for _, name := range splitLines(out) {
		branches = append(branches, BranchInfo{Name: name, Path: s.root, Current: name == current})
	}
	return branches, nil
}

// CreateBranch creates a plain branch from base (defaulting to HEAD);
// it does not check it out.
func (s *Standard) CreateBranch(ctx context.Context, name, base string) (string, error) {
	args := []string{"branch", name}
	if base != "" {
		args = append(args, base)
	}
	if _, err := runGit(ctx, s.root, "", args...); err != nil {
		return "", err
	}
	return s.root, nil
}

// DeleteBranch refuses to delete the currently checked-out branch.
func (s *Standard) DeleteBranch(ctx context.Context, name string) error {
	current, err := s.currentBranch(ctx)
	if err != nil {
		return err
	}
	if name == current {
		return rerrors.Newf(rerrors.KindLayout, "refusing to delete the current branch %q", name)
	}
	_, err = runGit(ctx, s.root, "", "branch", "-D", name)
	return err
}

// SwitchBranch checks out name in place.
func (s *Standard) SwitchBranch(ctx context.Context, name string) (string, error) {
	if _, err := runGit(ctx, s.root, "", "checkout", name); err != nil {
		return "", err
	}
	return s.root, nil
}

func (s *Standard) RenameBranch(ctx context.Context, oldName, newName string) error {
	_, err := runGit(ctx, s.root, "", "branch", "-m", oldName, newName)
	return err
}
