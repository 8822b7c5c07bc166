package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/mintsh/mintsh/core/session"
)

// Replace substitutes every occurrence of a string in a file, writing a
// .bak copy of the original first.
func Replace(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 4 {
		usagef(s, "replace: usage replace <file> <old> <new>")
		return 1
	}
	name, oldText, newText := s.Abs(args[1]), args[2], args[3]

	fi, err := s.FS.Stat(name)
	if err != nil {
		errorf(s, "replace: cannot open file")
		return 1
	}
	content, err := afero.ReadFile(s.FS, name)
	if err != nil {
		errorf(s, "replace: cannot open file")
		return 1
	}

	backup := name + ".bak"
	if err := afero.WriteFile(s.FS, backup, content, fi.Mode().Perm()); err != nil {
		errorf(s, "replace: %v", err)
		return 1
	}

	replaced := strings.ReplaceAll(string(content), oldText, newText)
	if err := afero.WriteFile(s.FS, name, []byte(replaced), fi.Mode().Perm()); err != nil {
		errorf(s, "replace: %v", err)
		return 1
	}

	fmt.Fprintf(s.Stdout, "replaced (backup -> %s)\n", args[1]+".bak")
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"replace"},
		Use:   "replace <file> <old> <new>",
		Short: "Replace text in a file, keeping a .bak copy.",
		Proc:  Replace,
	})
}
