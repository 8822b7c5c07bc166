// Package commands implements the builtin commands of the shell. Each file
// registers its commands in an init function; the registry is fixed once
// the process is up.
package commands

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"

	"github.com/mintsh/mintsh/core/session"
)

// ProcessFunc is the uniform handler contract: every command receives the
// full token sequence (args[0] is the command name) and the mutable
// session, and returns an exit status.
type ProcessFunc func(ctx context.Context, s *session.Session, args []string) int

// Command is one registry entry.
type Command struct {
	// Names the command answers to, e.g. exit and quit.
	Names []string
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	Proc ProcessFunc
}

var (
	allCommands  []*Command
	commandIndex = make(map[string]*Command)
)

// mustRegister adds a command to the registry, panicking on duplicates.
func mustRegister(cmd *Command) {
	for _, name := range cmd.Names {
		if _, exists := commandIndex[name]; exists {
			panic(fmt.Sprintf("duplicate command registration: %q", name))
		}
		commandIndex[name] = cmd
	}
	allCommands = append(allCommands, cmd)
}

// Lookup finds the command registered under name.
func Lookup(name string) (*Command, bool) {
	cmd, ok := commandIndex[name]
	return cmd, ok
}

// ListBuiltinCommands returns every registered command sorted by primary
// name.
func ListBuiltinCommands() []*Command {
	out := make([]*Command, len(allCommands))
	copy(out, allCommands)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Names[0] < out[j].Names[0]
	})
	return out
}

// SimpleCommand handles flag parsing and help for a builtin.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not. If this is non-nil
	// when Run() is called, then the default help flag isn't added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (c *SimpleCommand) Flags() *getopt.Set {
	if c.flags == nil {
		c.flags = getopt.New()
	}
	return c.flags
}

// PrintHelp writes help for the command to the given writer.
func (c *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, c.Use)
	fmt.Fprintln(w, c.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	c.Flags().PrintOptions(w)
}

// Run parses flags and, on success, calls the callback.
func (c *SimpleCommand) Run(s *session.Session, args []string, callback func() int) int {
	opts := c.Flags()

	if c.ShowHelp == nil {
		c.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(args, nil); err != nil {
		usagef(s, "%s: %v", args[0], err)
		c.PrintHelp(s.Stderr)
		return 1
	}

	if *c.ShowHelp {
		c.PrintHelp(s.Stdout)
		return 0
	}

	return callback()
}

// The Mint palette.
var (
	ColorMint        = color.New(38, 5, 121)
	ColorBrightGreen = color.New(color.FgHiGreen)
	ColorCyan        = color.New(color.FgCyan)
	ColorBlue        = color.New(color.FgBlue)
	ColorMagenta     = color.New(color.FgMagenta)
	ColorOrange      = color.New(38, 5, 214)
	ColorYellow      = color.New(color.FgYellow)
	ColorRed         = color.New(color.FgRed)
	ColorGray        = color.New(color.FgHiBlack)
)

// colorize applies c when the session has colors enabled.
func colorize(s *session.Session, c *color.Color, format string, a ...interface{}) string {
	if s.Color {
		return c.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}

// errorf reports a command failure: a single red diagnostic line on the
// session's error stream.
func errorf(s *session.Session, format string, a ...interface{}) {
	fmt.Fprintln(s.Stderr, colorize(s, ColorRed, format, a...))
}

// usagef reports bad arguments: a single yellow hint on the error stream.
func usagef(s *session.Session, format string, a ...interface{}) {
	fmt.Fprintln(s.Stderr, colorize(s, ColorYellow, format, a...))
}

// BytesToHuman formats a byte count with a metric suffix.
func BytesToHuman(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"P", 1e15},
		{"T", 1e12},
		{"G", 1e9},
		{"M", 1e6},
		{"K", 1e3},
	} {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%d", bytes)
}

// shellQuote wraps arg in single quotes for the host interpreter.
func shellQuote(arg string) string {
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
