package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/mintsh/mintsh/core/session"
)

// Echo prints its arguments separated by single spaces.
func Echo(ctx context.Context, s *session.Session, args []string) int {
	fmt.Fprintln(s.Stdout, strings.Join(args[1:], " "))
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"echo"},
		Use:   "echo <text>",
		Short: "Print text.",
		Proc:  Echo,
	})
}
