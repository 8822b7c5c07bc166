package commands

import (
	"context"

	"github.com/mintsh/mintsh/core/session"
)

// Exit ends the session. The REPL checks the session after every dispatch.
func Exit(ctx context.Context, s *session.Session, args []string) int {
	s.RequestExit()
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"exit", "quit"},
		Use:   "exit",
		Short: "Leave the shell.",
		Proc:  Exit,
	})
}
