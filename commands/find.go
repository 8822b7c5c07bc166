package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/mintsh/mintsh/core/session"
)

// Find prints every path under a directory.
func Find(ctx context.Context, s *session.Session, args []string) int {
	dir := "."
	if len(args) > 1 {
		dir = args[1]
	}

	err := afero.Walk(s.FS, s.Abs(dir), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		fmt.Fprintln(s.Stdout, path)
		return nil
	})
	if err != nil {
		errorf(s, "find: %v", err)
		return 1
	}
	return 0
}

// Count tallies files and directories recursively.
func Count(ctx context.Context, s *session.Session, args []string) int {
	dir := "."
	if len(args) > 1 {
		dir = args[1]
	}

	var files, dirs int
	root := s.Abs(dir)
	err := afero.Walk(s.FS, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		switch {
		case path == root:
			// The root itself isn't counted.
		case info.IsDir():
			dirs++
		case info.Mode().IsRegular():
			files++
		}
		return nil
	})
	if err != nil {
		errorf(s, "count: %v", err)
		return 1
	}

	fmt.Fprintf(s.Stdout, "%s%d    %s%d\n",
		colorize(s, ColorCyan, "files: "), files,
		colorize(s, ColorCyan, "dirs: "), dirs)
	return 0
}

// Du sums regular file sizes under a directory.
func Du(ctx context.Context, s *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "du [-h] [dir]",
		Short: "Show disk usage of a directory.",
	}

	humanSize := cmd.Flags().BoolLong("human-readable", 'h', "print human readable sizes")

	return cmd.Run(s, args, func() int {
		dir := "."
		if rest := cmd.Flags().Args(); len(rest) > 0 {
			dir = rest[0]
		}

		var total int64
		err := afero.Walk(s.FS, s.Abs(dir), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.Mode().IsRegular() {
				total += info.Size()
			}
			return nil
		})
		if err != nil {
			errorf(s, "du: %v", err)
			return 1
		}

		if *humanSize {
			fmt.Fprintf(s.Stdout, "%s\t%s\n", BytesToHuman(total), dir)
		} else {
			fmt.Fprintf(s.Stdout, "%dK\t%s\n", total/1024, dir)
		}
		return 0
	})
}

func init() {
	mustRegister(&Command{
		Names: []string{"find"},
		Use:   "find [dir]",
		Short: "List every path under a directory.",
		Proc:  Find,
	})
	mustRegister(&Command{
		Names: []string{"count"},
		Use:   "count [dir]",
		Short: "Count files and directories recursively.",
		Proc:  Count,
	})
	mustRegister(&Command{
		Names: []string{"du"},
		Use:   "du [-h] [dir]",
		Short: "Show disk usage of a directory.",
		Proc:  Du,
	})
}
