package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mintsh/mintsh/core/session"
)

// Tree prints a simple directory tree, directories first.
func Tree(ctx context.Context, s *session.Session, args []string) int {
	dir := "."
	if len(args) > 1 {
		dir = args[1]
	}

	root := s.Abs(dir)
	fmt.Fprintln(s.Stdout, dir)
	if err := printTree(s, root, ""); err != nil {
		errorf(s, "tree: %v", err)
		return 1
	}
	return 0
}

func printTree(s *session.Session, root, prefix string) error {
	infos, err := afero.ReadDir(s.FS, root)
	if err != nil {
		return err
	}

	var dirs, files []string
	for _, fi := range infos {
		if fi.IsDir() {
			dirs = append(dirs, fi.Name())
		} else {
			files = append(files, fi.Name())
		}
	}

	for i, name := range dirs {
		last := i+1 == len(dirs) && len(files) == 0
		fmt.Fprintf(s.Stdout, "%s%s%s\n", prefix, branch(last), colorize(s, ColorBlue, "%s", name))
		childPrefix := prefix + "│   "
		if last {
			childPrefix = prefix + "    "
		}
		if err := printTree(s, filepath.Join(root, name), childPrefix); err != nil {
			return err
		}
	}
	for i, name := range files {
		fmt.Fprintf(s.Stdout, "%s%s%s\n", prefix, branch(i+1 == len(files)), name)
	}
	return nil
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func init() {
	mustRegister(&Command{
		Names: []string{"tree"},
		Use:   "tree [dir]",
		Short: "Show a directory tree.",
		Proc:  Tree,
	})
}
