package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/mintsh/mintsh/core/session"
)

// Grep prints lines of a file containing a literal pattern, prefixed with
// their line number.
func Grep(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 3 {
		usagef(s, "grep: usage grep <pattern> <file>")
		return 1
	}

	fd, err := s.FS.Open(s.Abs(args[2]))
	if err != nil {
		errorf(s, "grep: cannot open file")
		return 1
	}
	defer fd.Close()

	matched := false
	scanner := bufio.NewScanner(fd)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if strings.Contains(line, args[1]) {
			fmt.Fprintf(s.Stdout, "%s%s\n", colorize(s, ColorMagenta, "%d: ", lineno), line)
			matched = true
		}
	}
	if err := scanner.Err(); err != nil {
		errorf(s, "grep: %v", err)
		return 2
	}
	if !matched {
		return 1
	}
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"grep"},
		Use:   "grep <pattern> <file>",
		Short: "Search a file for lines containing a pattern.",
		Proc:  Grep,
	})
}
