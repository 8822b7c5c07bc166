package commands

import (
	"bufio"
	"context"
	"fmt"
	"sort"

	"github.com/mintsh/mintsh/core/session"
)

// Sort prints a file's lines in lexicographic order.
func Sort(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "sort: missing file")
		return 1
	}

	lines, ok := readLines(s, "sort", args[1])
	if !ok {
		return 1
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(s.Stdout, line)
	}
	return 0
}

// Uniq drops adjacent duplicate lines.
func Uniq(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "uniq: missing file")
		return 1
	}

	lines, ok := readLines(s, "uniq", args[1])
	if !ok {
		return 1
	}
	for i, line := range lines {
		if i == 0 || line != lines[i-1] {
			fmt.Fprintln(s.Stdout, line)
		}
	}
	return 0
}

func readLines(s *session.Session, cmd, name string) ([]string, bool) {
	fd, err := s.FS.Open(s.Abs(name))
	if err != nil {
		errorf(s, "%s: cannot open file", cmd)
		return nil, false
	}
	defer fd.Close()

	var lines []string
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		errorf(s, "%s: %v", cmd, err)
		return nil, false
	}
	return lines, true
}

func init() {
	mustRegister(&Command{
		Names: []string{"sort"},
		Use:   "sort <file>",
		Short: "Sort file lines.",
		Proc:  Sort,
	})
	mustRegister(&Command{
		Names: []string{"uniq"},
		Use:   "uniq <file>",
		Short: "Drop adjacent duplicate lines.",
		Proc:  Uniq,
	})
}
