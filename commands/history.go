package commands

import (
	"context"
	"fmt"

	"github.com/mintsh/mintsh/core/session"
)

// History displays or clears the session's command log.
func History(ctx context.Context, s *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "history [-c]",
		Short: "Show the command history for this session.",
	}

	clear := cmd.Flags().Bool('c', "clear the history by deleting all entries")

	return cmd.Run(s, args, func() int {
		if *clear {
			s.ClearHistory()
			fmt.Fprintln(s.Stdout, "history cleared")
			return 0
		}

		for i, line := range s.History {
			fmt.Fprintf(s.Stdout, "% 5d  %s\n", i+1, line)
		}
		return 0
	})
}

func init() {
	mustRegister(&Command{
		Names: []string{"history"},
		Use:   "history [-c]",
		Short: "Show or clear the command history.",
		Proc:  History,
	})
}
