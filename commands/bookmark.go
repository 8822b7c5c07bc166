package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/mintsh/mintsh/core/session"
)

// Bookmark saves the working directory under a name.
func Bookmark(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "bookmark: usage bookmark <name>")
		return 1
	}
	cwd := s.Getwd()
	s.Bookmarks[args[1]] = cwd
	fmt.Fprintf(s.Stdout, "bookmarked %s -> %s\n", colorize(s, ColorMint, "%s", args[1]), cwd)
	return 0
}

// Bookmarks lists the saved bookmarks.
func Bookmarks(ctx context.Context, s *session.Session, args []string) int {
	if len(s.Bookmarks) == 0 {
		fmt.Fprintln(s.Stdout, colorize(s, ColorGray, "(no bookmarks)"))
		return 0
	}

	names := make([]string, 0, len(s.Bookmarks))
	for name := range s.Bookmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(s.Stdout, "%s -> %s\n", colorize(s, ColorMint, "%s", name), s.Bookmarks[name])
	}
	return 0
}

// Unbookmark removes a bookmark.
func Unbookmark(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "unbookmark: usage unbookmark <name>")
		return 1
	}
	if _, ok := s.Bookmarks[args[1]]; !ok {
		usagef(s, "unbookmark: not found")
		return 1
	}
	delete(s.Bookmarks, args[1])
	fmt.Fprintln(s.Stdout, "removed")
	return 0
}

// Goto changes the working directory to a bookmarked path.
func Goto(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "goto: usage goto <name>")
		return 1
	}
	target, ok := s.Bookmarks[args[1]]
	if !ok {
		usagef(s, "goto: not found")
		return 1
	}
	if err := s.Chdir(target); err != nil {
		errorf(s, "goto: %v", err)
		return 1
	}
	fmt.Fprintf(s.Stdout, "cwd -> %s\n", colorize(s, ColorMint, "%s", target))
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"bookmark"},
		Use:   "bookmark <name>",
		Short: "Save the working directory under a name.",
		Proc:  Bookmark,
	})
	mustRegister(&Command{
		Names: []string{"bookmarks"},
		Use:   "bookmarks",
		Short: "List saved bookmarks.",
		Proc:  Bookmarks,
	})
	mustRegister(&Command{
		Names: []string{"unbookmark"},
		Use:   "unbookmark <name>",
		Short: "Remove a bookmark.",
		Proc:  Unbookmark,
	})
	mustRegister(&Command{
		Names: []string{"goto"},
		Use:   "goto <name>",
		Short: "Change directory to a bookmark.",
		Proc:  Goto,
	})
}
