package core

import (
	"context"
	"io"
	"os/exec"
)

// HostShell forwards raw command lines to the host's command interpreter.
// Output streams into the given writers as the child produces it; the
// child's exit status is deliberately not surfaced.
type HostShell struct {
	// Shell is the interpreter binary, e.g. /bin/sh.
	Shell string
}

// NewHostShell returns a runner using /bin/sh.
func NewHostShell() *HostShell {
	return &HostShell{Shell: "/bin/sh"}
}

// Run executes command with the interpreter's -c flag from dir. A non-nil
// error means the child couldn't be started at all.
func (h *HostShell) Run(ctx context.Context, dir, command string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, h.Shell, "-c", command)
	cmd.Dir = dir
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return err
	}
	// The exit status isn't reported to the user.
	_ = cmd.Wait()
	return nil
}
