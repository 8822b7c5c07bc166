package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/mintsh/mintsh/core/session"
)

// Host passthrough commands: each builds one host command line and runs it
// through the session's HostRunner, streaming the output back.
type hostCommand struct {
	Name  string
	Use   string
	Short string
	// MinArgs is the number of required positional arguments.
	MinArgs int
	// Build assembles the host command line from the token sequence.
	Build func(s *session.Session, args []string) string
}

func (c *hostCommand) toProc() ProcessFunc {
	return func(ctx context.Context, s *session.Session, args []string) int {
		if len(args)-1 < c.MinArgs {
			usagef(s, "%s: usage %s", c.Name, c.Use)
			return 1
		}

		command := c.Build(s, args)
		if err := s.Host.Run(ctx, s.Getwd(), command, s.Stdin, s.Stdout, s.Stderr); err != nil {
			errorf(s, "%s: failed to run: %v", c.Name, err)
			return 1
		}
		return 0
	}
}

var hostCommands = []hostCommand{
	{
		Name:  "ps",
		Use:   "ps",
		Short: "Show the process list.",
		Build: func(s *session.Session, args []string) string {
			return "ps -e -o pid,comm,%cpu,%mem"
		},
	},
	{
		Name:  "df",
		Use:   "df",
		Short: "Show disk and free space info.",
		Build: func(s *session.Session, args []string) string {
			return "df -h"
		},
	},
	{
		Name:  "top",
		Use:   "top",
		Short: "Launch the process monitor.",
		Build: func(s *session.Session, args []string) string {
			if _, err := exec.LookPath("htop"); err == nil {
				return "htop"
			}
			return "top"
		},
	},
	{
		Name:  "net",
		Use:   "net",
		Short: "Show network interfaces.",
		Build: func(s *session.Session, args []string) string {
			if _, err := exec.LookPath("ip"); err == nil {
				return "ip addr"
			}
			return "ifconfig -a"
		},
	},
	{
		Name:    "ping",
		Use:     "ping <host> [-c N]",
		Short:   "Ping a host.",
		MinArgs: 1,
		Build: func(s *session.Session, args []string) string {
			count := 4
			for i := 2; i+1 < len(args); i++ {
				if args[i] == "-c" {
					if n, err := strconv.Atoi(args[i+1]); err == nil {
						count = n
					}
				}
			}
			return fmt.Sprintf("ping -c %d %s", count, shellQuote(args[1]))
		},
	},
	{
		Name:    "hash",
		Use:     "hash <file>",
		Short:   "Show the SHA-256 of a file.",
		MinArgs: 1,
		Build: func(s *session.Session, args []string) string {
			return "sha256sum " + shellQuote(args[1])
		},
	},
	{
		Name:    "compress",
		Use:     "compress <file/dir> <out.zip>",
		Short:   "Create a zip archive.",
		MinArgs: 2,
		Build: func(s *session.Session, args []string) string {
			return fmt.Sprintf("zip -r %s %s", shellQuote(args[2]), shellQuote(args[1]))
		},
	},
	{
		Name:    "extract",
		Use:     "extract <archive>",
		Short:   "Extract a zip or tar archive.",
		MinArgs: 1,
		Build: func(s *session.Session, args []string) string {
			archive := shellQuote(args[1])
			return fmt.Sprintf("unzip %s || tar -xf %s", archive, archive)
		},
	},
	{
		Name:    "open",
		Use:     "open <file>",
		Short:   "Open a file with the default application.",
		MinArgs: 1,
		Build: func(s *session.Session, args []string) string {
			return fmt.Sprintf("xdg-open %s >/dev/null 2>&1 &", shellQuote(args[1]))
		},
	},
	{
		Name:    "edit",
		Use:     "edit <file>",
		Short:   "Open a file in $EDITOR, code or nano.",
		MinArgs: 1,
		Build: func(s *session.Session, args []string) string {
			editor := os.Getenv("EDITOR")
			if editor == "" {
				if _, err := exec.LookPath("code"); err == nil {
					editor = "code"
				} else {
					editor = "nano"
				}
			}
			return editor + " " + shellQuote(args[1])
		},
	},
	{
		Name:    "notify",
		Use:     "notify <message>",
		Short:   "Send a desktop notification.",
		MinArgs: 1,
		Build: func(s *session.Session, args []string) string {
			return "notify-send \"mintsh\" " + shellQuote(args[1])
		},
	},
}

func init() {
	for i := range hostCommands {
		cmd := &hostCommands[i]
		mustRegister(&Command{
			Names: []string{cmd.Name},
			Use:   cmd.Use,
			Short: cmd.Short,
			Proc:  cmd.toProc(),
		})
	}
}
