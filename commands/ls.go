package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/mintsh/mintsh/core/session"
)

// Ls lists a directory, colorized Mint style: directories blue, symlinks
// magenta, executables bright green.
func Ls(ctx context.Context, s *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "ls [-l] [dir]",
		Short: "List a directory.",
	}

	long := cmd.Flags().Bool('l', "long listing: permissions, size, mtime")

	return cmd.Run(s, args, func() int {
		dir := "."
		if rest := cmd.Flags().Args(); len(rest) > 0 {
			dir = rest[0]
		}

		infos, err := afero.ReadDir(s.FS, s.Abs(dir))
		if err != nil {
			errorf(s, "ls: %v", err)
			return 1
		}

		for _, fi := range infos {
			if *long {
				fmt.Fprintf(s.Stdout, "%s %s %s ",
					colorize(s, ColorGray, "%s", fi.Mode().String()),
					colorize(s, ColorOrange, "%8d", fi.Size()),
					colorize(s, ColorGray, "%s", fi.ModTime().Format("2006-01-02 15:04:05")))
			}
			if c := entryColor(fi); c != nil {
				fmt.Fprintln(s.Stdout, colorize(s, c, "%s", fi.Name()))
			} else {
				fmt.Fprintln(s.Stdout, fi.Name())
			}
		}
		return 0
	})
}

func entryColor(fi os.FileInfo) *color.Color {
	switch {
	case fi.IsDir():
		return ColorBlue
	case fi.Mode()&os.ModeSymlink != 0:
		return ColorMagenta
	case fi.Mode()&0111 != 0:
		return ColorBrightGreen
	default:
		return nil
	}
}

func init() {
	mustRegister(&Command{
		Names: []string{"ls"},
		Use:   "ls [-l] [dir]",
		Short: "List a directory.",
		Proc:  Ls,
	})
}
