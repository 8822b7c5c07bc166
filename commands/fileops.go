package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	"github.com/mintsh/mintsh/core/session"
)

// Mkdir creates a directory, or a whole path with -p.
func Mkdir(ctx context.Context, s *session.Session, args []string) int {
	cmd := &SimpleCommand{
		Use:   "mkdir [-p] <dir>",
		Short: "Create a directory.",
	}

	parents := cmd.Flags().Bool('p', "create parent directories as needed")

	return cmd.Run(s, args, func() int {
		rest := cmd.Flags().Args()
		if len(rest) < 1 {
			usagef(s, "mkdir: missing dir")
			return 1
		}

		target := s.Abs(rest[0])
		var err error
		if *parents {
			err = s.FS.MkdirAll(target, 0755)
		} else {
			err = s.FS.Mkdir(target, 0755)
		}
		if err != nil {
			errorf(s, "mkdir: %v", err)
			return 1
		}
		fmt.Fprintln(s.Stdout, "created")
		return 0
	})
}

// Rm removes a single file.
func Rm(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "rm: missing file")
		return 1
	}
	if err := s.FS.Remove(s.Abs(args[1])); err != nil {
		errorf(s, "rm: %v", err)
		return 1
	}
	fmt.Fprintln(s.Stdout, "removed")
	return 0
}

// Rmdir removes a directory tree.
func Rmdir(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "rmdir: missing dir")
		return 1
	}
	if err := s.FS.RemoveAll(s.Abs(args[1])); err != nil {
		errorf(s, "rmdir: %v", err)
		return 1
	}
	fmt.Fprintln(s.Stdout, "removed")
	return 0
}

// Touch creates a file or updates its timestamps.
func Touch(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "touch: missing file")
		return 1
	}

	fd, err := s.FS.OpenFile(s.Abs(args[1]), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		errorf(s, "touch: cannot create")
		return 1
	}
	return closeOrFail(s, "touch", fd)
}

// Cp copies a file or directory tree.
func Cp(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 3 {
		usagef(s, "cp: usage cp <src> <dst>")
		return 1
	}

	if err := copyTree(s.FS, s.Abs(args[1]), s.Abs(args[2])); err != nil {
		errorf(s, "cp: %v", err)
		return 1
	}
	fmt.Fprintln(s.Stdout, "copied")
	return 0
}

// Mv renames a file or directory.
func Mv(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 3 {
		usagef(s, "mv: usage mv <src> <dst>")
		return 1
	}
	if err := s.FS.Rename(s.Abs(args[1]), s.Abs(args[2])); err != nil {
		errorf(s, "mv: %v", err)
		return 1
	}
	fmt.Fprintln(s.Stdout, "moved")
	return 0
}

// Ln creates a symbolic link where the filesystem supports it.
func Ln(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 3 {
		usagef(s, "ln: usage ln <target> <link>")
		return 1
	}

	linker, ok := s.FS.(afero.Symlinker)
	if !ok {
		errorf(s, "ln: symlinks not supported by this filesystem")
		return 1
	}
	if err := linker.SymlinkIfPossible(args[1], s.Abs(args[2])); err != nil {
		errorf(s, "ln: %v", err)
		return 1
	}
	fmt.Fprintln(s.Stdout, "symlink created")
	return 0
}

// Chmod sets a file's permissions from an octal string like 755.
func Chmod(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 3 {
		usagef(s, "chmod: usage chmod <octal> <file>")
		return 1
	}

	mode, err := strconv.ParseUint(args[1], 8, 32)
	if err != nil || mode > 0777 {
		usagef(s, "chmod: bad mode %q", args[1])
		return 1
	}
	if err := s.FS.Chmod(s.Abs(args[2]), os.FileMode(mode)); err != nil {
		errorf(s, "chmod: %v", err)
		return 1
	}
	return 0
}

// copyTree copies src to dst, recursing into directories and overwriting
// existing files.
func copyTree(fs afero.Fs, src, dst string) error {
	fi, err := fs.Stat(src)
	if err != nil {
		return err
	}

	if !fi.IsDir() {
		return copyFile(fs, src, dst, fi.Mode())
	}

	if err := fs.MkdirAll(dst, fi.Mode().Perm()); err != nil {
		return err
	}
	entries, err := afero.ReadDir(fs, src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := copyTree(fs, filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(fs afero.Fs, src, dst string, mode os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func closeOrFail(s *session.Session, cmd string, fd afero.File) int {
	if err := fd.Close(); err != nil {
		errorf(s, "%s: %v", cmd, err)
		return 1
	}
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"mkdir"},
		Use:   "mkdir [-p] <dir>",
		Short: "Create a directory.",
		Proc:  Mkdir,
	})
	mustRegister(&Command{
		Names: []string{"rm"},
		Use:   "rm <file>",
		Short: "Remove a file.",
		Proc:  Rm,
	})
	mustRegister(&Command{
		Names: []string{"rmdir"},
		Use:   "rmdir <dir>",
		Short: "Remove a directory tree.",
		Proc:  Rmdir,
	})
	mustRegister(&Command{
		Names: []string{"touch"},
		Use:   "touch <file>",
		Short: "Create an empty file.",
		Proc:  Touch,
	})
	mustRegister(&Command{
		Names: []string{"cp"},
		Use:   "cp <src> <dst>",
		Short: "Copy a file or directory.",
		Proc:  Cp,
	})
	mustRegister(&Command{
		Names: []string{"mv"},
		Use:   "mv <src> <dst>",
		Short: "Move or rename a file.",
		Proc:  Mv,
	})
	mustRegister(&Command{
		Names: []string{"ln"},
		Use:   "ln <target> <link>",
		Short: "Create a symbolic link.",
		Proc:  Ln,
	})
	mustRegister(&Command{
		Names: []string{"chmod"},
		Use:   "chmod <octal> <file>",
		Short: "Change file permissions.",
		Proc:  Chmod,
	})
}
