package commands

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/user"
	"strconv"
	"time"

	"github.com/spf13/afero"

	"github.com/mintsh/mintsh/core/session"
)

// Whoami prints the current user name.
func Whoami(ctx context.Context, s *session.Session, args []string) int {
	if u, err := user.Current(); err == nil {
		fmt.Fprintln(s.Stdout, u.Username)
		return 0
	}
	if name := os.Getenv("USER"); name != "" {
		fmt.Fprintln(s.Stdout, name)
		return 0
	}
	errorf(s, "whoami: unknown user")
	return 1
}

// Date prints the local date and time.
func Date(ctx context.Context, s *session.Session, args []string) int {
	fmt.Fprintln(s.Stdout, colorize(s, ColorGray, "%s", time.Now().Format(time.ANSIC)))
	return 0
}

// Clear wipes the screen with ANSI escapes.
func Clear(ctx context.Context, s *session.Session, args []string) int {
	fmt.Fprint(s.Stdout, "\x1b[2J\x1b[H")
	return 0
}

// Uptime reports system uptime from /proc/uptime, falling back to the
// session's own age when unavailable.
func Uptime(ctx context.Context, s *session.Session, args []string) int {
	if contents, err := afero.ReadFile(s.FS, "/proc/uptime"); err == nil {
		fields := bytes.Fields(contents)
		if len(fields) > 0 {
			if up, err := strconv.ParseFloat(string(fields[0]), 64); err == nil {
				fmt.Fprintf(s.Stdout, "%s%d seconds\n", colorize(s, ColorCyan, "uptime: "), int64(up))
				return 0
			}
		}
	}

	secs := int64(time.Since(s.Started).Seconds())
	fmt.Fprintf(s.Stdout, "%s%d seconds\n", colorize(s, ColorCyan, "uptime (process): "), secs)
	return 0
}

// Random prints uniform random integers: random [min] [max] [count].
func Random(ctx context.Context, s *session.Session, args []string) int {
	min, max, count := 0, 100, 1

	parse := func(i int, out *int) bool {
		if len(args) <= i {
			return true
		}
		v, err := strconv.Atoi(args[i])
		if err != nil {
			usagef(s, "random: bad number %q", args[i])
			return false
		}
		*out = v
		return true
	}
	if !parse(1, &min) || !parse(2, &max) || !parse(3, &count) {
		return 1
	}
	if max < min {
		usagef(s, "random: max below min")
		return 1
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < count; i++ {
		sep := " "
		if i+1 == count {
			sep = "\n"
		}
		fmt.Fprintf(s.Stdout, "%s%s", colorize(s, ColorBrightGreen, "%d", min+rng.Intn(max-min+1)), sep)
	}
	return 0
}

func init() {
	mustRegister(&Command{
		Names: []string{"whoami"},
		Use:   "whoami",
		Short: "Print the current user.",
		Proc:  Whoami,
	})
	mustRegister(&Command{
		Names: []string{"date"},
		Use:   "date",
		Short: "Show the date and time.",
		Proc:  Date,
	})
	mustRegister(&Command{
		Names: []string{"clear"},
		Use:   "clear",
		Short: "Clear the screen.",
		Proc:  Clear,
	})
	mustRegister(&Command{
		Names: []string{"uptime"},
		Use:   "uptime",
		Short: "Show system uptime.",
		Proc:  Uptime,
	})
	mustRegister(&Command{
		Names: []string{"random"},
		Use:   "random [min] [max] [count]",
		Short: "Generate random integers.",
		Proc:  Random,
	})
}
