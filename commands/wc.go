package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/mintsh/mintsh/core/session"
)

// Wc counts lines, words and characters in a file.
func Wc(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "wc: missing file")
		return 1
	}

	fd, err := s.FS.Open(s.Abs(args[1]))
	if err != nil {
		errorf(s, "wc: cannot open file")
		return 1
	}
	defer fd.Close()

	var lines, words, chars int
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		line := scanner.Text()
		lines++
		chars += len(line) + 1
		words += len(strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		errorf(s, "wc: %v", err)
		return 1
	}

	fmt.Fprintf(s.Stdout, "%d %d %d %s\n", lines, words, chars, args[1])
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"wc"},
		Use:   "wc <file>",
		Short: "Count lines, words and characters.",
		Proc:  Wc,
	})
}
