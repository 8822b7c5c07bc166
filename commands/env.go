package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/mintsh/mintsh/core/session"
)

// Env prints the process environment.
func Env(ctx context.Context, s *session.Session, args []string) int {
	for _, kv := range os.Environ() {
		fmt.Fprintln(s.Stdout, kv)
	}
	return 0
}

// Setenv sets a process environment variable, visible to forwarded host
// commands.
func Setenv(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 3 {
		usagef(s, "setenv: usage setenv NAME VALUE")
		return 1
	}
	if err := os.Setenv(args[1], args[2]); err != nil {
		errorf(s, "setenv: %v", err)
		return 1
	}
	return 0
}

// Which locates an executable on the host PATH.
func Which(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "which: missing argument")
		return 1
	}

	path, err := exec.LookPath(args[1])
	if err != nil {
		fmt.Fprintln(s.Stdout, "which: not found")
		return 1
	}
	fmt.Fprintln(s.Stdout, path)
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"env"},
		Use:   "env",
		Short: "Show environment variables.",
		Proc:  Env,
	})
	mustRegister(&Command{
		Names: []string{"setenv"},
		Use:   "setenv NAME VALUE",
		Short: "Set an environment variable.",
		Proc:  Setenv,
	})
	mustRegister(&Command{
		Names: []string{"which"},
		Use:   "which <cmd>",
		Short: "Find an executable in PATH.",
		Proc:  Which,
	})
}
