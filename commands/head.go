package commands

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mintsh/mintsh/core/session"
)

// headLines is the fixed line count for head and tail.
const headLines = 10

// Head prints the first lines of a file.
func Head(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "head: missing file")
		return 1
	}

	fd, err := s.FS.Open(s.Abs(args[1]))
	if err != nil {
		errorf(s, "head: cannot open file")
		return 1
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	for n := 0; n < headLines && scanner.Scan(); n++ {
		fmt.Fprintln(s.Stdout, scanner.Text())
	}
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"head"},
		Use:   "head <file>",
		Short: "Print the first 10 lines of a file.",
		Proc:  Head,
	})
}
