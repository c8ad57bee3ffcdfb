package opener

import (
	"context"
	"os/exec"
	"time"
)

// CommandRunner abstracts launching the platform opener for testing
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs real commands using os/exec
type ExecRunner struct{}

// Run executes the command with a 5-second timeout
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	return exec.CommandContext(ctx, name, args...).Run()
}
