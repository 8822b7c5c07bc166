package commands

import (
	"context"
	"io"

	"github.com/mintsh/mintsh/core/session"
)

// Cat writes files to standard output.
func Cat(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "cat: missing file")
		return 1
	}

	for _, arg := range args[1:] {
		fd, err := s.FS.Open(s.Abs(arg))
		if err != nil {
			errorf(s, "cat: %v", err)
			return 1
		}
		_, err = io.Copy(s.Stdout, fd)
		fd.Close()
		if err != nil {
			errorf(s, "cat: %v", err)
			return 1
		}
	}
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"cat"},
		Use:   "cat <file>...",
		Short: "Show file contents.",
		Proc:  Cat,
	})
}
