package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mintsh/mintsh/core/session"
)

// Stat shows a file's metadata.
func Stat(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "stat: missing file")
		return 1
	}

	fi, err := s.FS.Stat(s.Abs(args[1]))
	if err != nil {
		usagef(s, "stat: not found")
		return 1
	}

	size := "-"
	kind := "other"
	switch {
	case fi.IsDir():
		kind = "directory"
	case fi.Mode().IsRegular():
		kind = "file"
		size = strconv.FormatInt(fi.Size(), 10)
	}

	w := s.Stdout
	fmt.Fprintf(w, "%s%s\n", colorize(s, ColorGray, "path: "), args[1])
	fmt.Fprintf(w, "%s%s\n", colorize(s, ColorGray, "size: "), size)
	fmt.Fprintf(w, "%s%s\n", colorize(s, ColorGray, "type: "), kind)
	fmt.Fprintf(w, "%s%s\n", colorize(s, ColorGray, "perm: "), fi.Mode().Perm().String())
	fmt.Fprintf(w, "%s%s\n", colorize(s, ColorGray, "mtime: "), fi.ModTime().Format("2006-01-02 15:04:05"))
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"stat"},
		Use:   "stat <file>",
		Short: "Show file metadata.",
		Proc:  Stat,
	})
}
