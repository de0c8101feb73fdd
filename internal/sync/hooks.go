package sync

import (
	"context"
	"os/exec"
	"time"

	"github.com/wgergely/repoctl/internal/manifest"
	"github.com/wgergely/repoctl/internal/rerrors"
)

// hookTimeout bounds how long a single lifecycle hook may run, the
// same bounded-subprocess idiom donor's internal/docker/manager.go
// applies to every shelled-out command.
const hookTimeout = 2 * time.Minute

// RunHooks runs every hook configured for event, in manifest order,
// stopping at the first failure.
func (e *Engine) RunHooks(ctx context.Context, event manifest.HookEvent) error {
	for _, hook := range e.Manifest.Hooks {
		if hook.Event != event {
			continue
		}
		if err := runHook(ctx, e.Root, hook); err != nil {
			return err
		}
	}
	return nil
}

// runHook executes a single configured hook, defaulting its working
// directory to the engine root.
func runHook(ctx context.Context, root string, hook manifest.HookConfig) error {
	hookCtx, cancel := context.WithTimeout(ctx, hookTimeout)
	defer cancel()

	cmd := exec.CommandContext(hookCtx, hook.Command, hook.Args...)
	cmd.Dir = root
	if hook.WorkingDir != "" {
		cmd.Dir = hook.WorkingDir
	}

	if output, err := cmd.CombinedOutput(); err != nil {
		return rerrors.Wrap(rerrors.KindSync, "hook "+string(hook.Event)+" ("+hook.Command+") failed: "+string(output), err)
	}
	return nil
}
