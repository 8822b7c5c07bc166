package commands

import (
	"context"
	"fmt"

	"github.com/mintsh/mintsh/core/expr"
	"github.com/mintsh/mintsh/core/session"
)

// Calc evaluates a quoted arithmetic expression: calc "2+3*4". Malformed
// expressions evaluate leniently rather than erroring, see core/expr.
func Calc(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, `calc: usage calc "expression"`)
		return 1
	}

	result := expr.Eval(args[1])
	fmt.Fprintln(s.Stdout, colorize(s, ColorOrange, "%v", result))
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"calc"},
		Use:   `calc "<expr>"`,
		Short: "Evaluate an arithmetic expression.",
		Proc:  Calc,
	})
}
