package commands

import (
	"context"
	"fmt"

	"github.com/mintsh/mintsh/core/session"
)

// Cd changes the session's working directory.
func Cd(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "cd: missing arg")
		return 1
	}
	if err := s.Chdir(args[1]); err != nil {
		errorf(s, "cd: %v", err)
		return 1
	}
	return 0
}

// Pwd prints the working directory.
func Pwd(ctx context.Context, s *session.Session, args []string) int {
	fmt.Fprintln(s.Stdout, colorize(s, ColorMint, "%s", s.Getwd()))
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"cd"},
		Use:   "cd <dir>",
		Short: "Change the working directory.",
		Proc:  Cd,
	})
	mustRegister(&Command{
		Names: []string{"pwd"},
		Use:   "pwd",
		Short: "Print the working directory.",
		Proc:  Pwd,
	})
}
