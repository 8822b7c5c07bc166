package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/mintsh/mintsh/core/session"
)

// Alias defines a one-level command alias: alias name='command'. The
// definition is the remaining tokens re-joined, split at the first '=',
// with one layer of matching surrounding quotes stripped from the value.
func Alias(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "alias: usage alias name='command'")
		return 1
	}

	definition := strings.Join(args[1:], " ")
	name, template, ok := strings.Cut(definition, "=")
	if !ok || name == "" {
		usagef(s, "alias: need name=command")
		return 1
	}
	template = stripQuotes(template)

	s.Aliases.Define(name, template)
	fmt.Fprintf(s.Stdout, "alias %s -> %s\n", colorize(s, ColorMint, "%s", name), template)
	return 0
}

// Unalias removes an alias.
func Unalias(ctx context.Context, s *session.Session, args []string) int {
	if len(args) < 2 {
		usagef(s, "unalias: usage unalias name")
		return 1
	}
	if !s.Aliases.Remove(args[1]) {
		usagef(s, "unalias: not found")
		return 1
	}
	fmt.Fprintln(s.Stdout, "unalias: removed")
	return 0
}

// Aliases lists the defined aliases.
func Aliases(ctx context.Context, s *session.Session, args []string) int {
	for _, name := range s.Aliases.Names() {
		template, _ := s.Aliases.Get(name)
		fmt.Fprintf(s.Stdout, "%s='%s'\n", colorize(s, ColorMint, "%s", name), template)
	}
	return 0
}

// stripQuotes removes one layer of matching surrounding quotes.
func stripQuotes(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

func init() {
	mustRegister(&Command{
		Names: []string{"alias"},
		Use:   "alias name='command'",
		Short: "Create a command alias.",
		Proc:  Alias,
	})
	mustRegister(&Command{
		Names: []string{"unalias"},
		Use:   "unalias name",
		Short: "Remove a command alias.",
		Proc:  Unalias,
	})
	mustRegister(&Command{
		Names: []string{"aliases"},
		Use:   "aliases",
		Short: "List defined aliases.",
		Proc:  Aliases,
	})
}
