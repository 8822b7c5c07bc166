package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mintsh/mintsh/core/session"
)

// Help prints the registry: one line per builtin with its usage and
// description.
func Help(ctx context.Context, s *session.Session, args []string) int {
	w := s.Stdout
	fmt.Fprintln(w, colorize(s, ColorCyan, "Builtin commands; anything else is forwarded to the host shell."))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 2, 8, 2, ' ', 0)
	defer tw.Flush()

	for _, cmd := range ListBuiltinCommands() {
		names := strings.Join(cmd.Names, ", ")
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", colorize(s, ColorMint, "%s", names), cmd.Use, cmd.Short)
	}
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"help"},
		Use:   "help",
		Short: "Show this message.",
		Proc:  Help,
	})
}
