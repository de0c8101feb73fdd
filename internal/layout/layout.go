// Package layout implements workspace layout detection and the
// branch/worktree operations that differ across the three supported
// shapes: a single working tree, in-repo worktrees under .worktrees/,
// or a container directory sharing one external git database across
// sibling branch directories.
//
// Detection walks parent directories from a starting point exactly
// the way the donor repository identifier resolves a workspace root
// from an arbitrary subdirectory, generalized here to distinguish
// three layout signals instead of one.
package layout

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/wgergely/repoctl/internal/rerrors"
)

// Mode identifies which of the three supported layouts a Layout value
// implements.
type Mode string

const (
	ModeStandard  Mode = "standard"
	ModeWorktrees Mode = "worktrees"
	ModeContainer Mode = "container"
)

const (
	gtDirName            = ".gt"
	gitDirName           = ".git"
	mainDirName          = "main"
	worktreesDirName     = ".worktrees"
	repositoryConfigName = ".repository"
)

// BranchInfo describes one branch and the directory its checkout
// lives in.
type BranchInfo struct {
	Name    string
	Path    string
	Current bool
}

// Layout is the operation surface every detected workspace shape
// implements: where configuration lives, and the six branch
// operations that differ in mechanics (but not in name) across
// Standard, Worktrees, and Container.
type Layout interface {
	Mode() Mode
	Root() string
	ConfigRoot() string
	ListBranches(ctx context.Context) ([]BranchInfo, error)
	CreateBranch(ctx context.Context, name, base string) (string, error)
	DeleteBranch(ctx context.Context, name string) error
	SwitchBranch(ctx context.Context, name string) (string, error)
	RenameBranch(ctx context.Context, oldName, newName string) error
}

// Detect walks parents from start using the default slug naming
// strategy. See DetectWithStrategy for Hierarchical naming.
func Detect(start string) (Layout, error) {
	return DetectWithStrategy(start, SlugStrategy{})
}

// DetectWithStrategy walks parents from start looking for a layout
// signal, preferring Container over Worktrees over Standard at every
// directory before climbing further - the same precedence the donor
// workspace detector applies.
func DetectWithStrategy(start string, naming NamingStrategy) (Layout, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, rerrors.Wrap(rerrors.KindLayout, "resolve starting directory", err)
	}

	dir := abs
	for {
		if l, ok := detectAt(dir, abs, naming); ok {
			return l, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil, rerrors.Newf(rerrors.KindLayout, "no layout signal found above %s", abs)
}

// detectAt checks a single directory for the three layout signals,
// and if one matches, builds the corresponding Layout rooted there.
// active is the directory Detect was originally invoked from, carried
// through so ListBranches can mark the branch actually in use.
func detectAt(dir, active string, naming NamingStrategy) (Layout, bool) {
	hasGt := isDir(filepath.Join(dir, gtDirName))
	hasMain := isDir(filepath.Join(dir, mainDirName))
	hasGit := exists(filepath.Join(dir, gitDirName))
	hasWorktrees := isDir(filepath.Join(dir, worktreesDirName))

	switch {
	case hasGt && hasMain:
		return newContainer(dir, active, naming), true
	case hasGit && hasWorktrees:
		return newWorktrees(dir, active, naming), true
	case hasGit:
		return newStandard(dir), true
	default:
		return nil, false
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// samePath compares two paths after absolutizing both, so a caller
// passing a relative "active" directory still matches an absolute
// worktree path reported by git.
func samePath(a, b string) bool {
	ca, errA := filepath.Abs(a)
	cb, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}

// splitLines splits git's line-oriented output, dropping blank lines.
func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
