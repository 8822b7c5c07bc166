package commands

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mintsh/mintsh/core/follow"
	"github.com/mintsh/mintsh/core/session"
)

// Tail prints the last lines of a file, or with -f follows it as it
// grows. Follow mode blocks until the command's context is cancelled.
func Tail(ctx context.Context, s *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "tail [-f] <file>",
		Short: "Print the last 10 lines of a file, or follow appended writes.",
	}

	followMode := cmd.Flags().Bool('f', "output appended data as the file grows")

	return cmd.Run(s, args, func() int {
		rest := cmd.Flags().Args()
		if len(rest) < 1 {
			usagef(s, "tail: missing file")
			return 1
		}
		name := s.Abs(rest[0])

		if *followMode {
			follower := &follow.Follower{
				FS:       s.FS,
				Out:      s.Stdout,
				Interval: s.FollowInterval,
			}
			if err := follower.Follow(ctx, name); err != nil {
				errorf(s, "tail -f: cannot open file")
				return 1
			}
			return 0
		}

		fd, err := s.FS.Open(name)
		if err != nil {
			errorf(s, "tail: cannot open file")
			return 1
		}
		defer fd.Close()

		var last []string
		scanner := bufio.NewScanner(fd)
		for scanner.Scan() {
			last = append(last, scanner.Text())
			if len(last) > headLines {
				last = last[1:]
			}
		}
		for _, line := range last {
			fmt.Fprintln(s.Stdout, line)
		}
		return 0
	})
}

func init() {
	mustRegister(&Command{
		Names: []string{"tail"},
		Use:   "tail [-f] <file>",
		Short: "Print the last lines of a file, or follow it.",
		Proc:  Tail,
	})
}
