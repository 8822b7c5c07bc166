// Package sessiontest runs command handlers against an in-memory session
// for testing.
package sessiontest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/mintsh/mintsh/core/session"
)

// ProcessFunc matches the handler contract in the commands package without
// importing it.
type ProcessFunc func(ctx context.Context, s *session.Session, args []string) int

// Cmd is a single prepared command invocation, analogous to exec.Cmd.
type Cmd struct {
	Session *session.Session
	Args    []string

	// ExitStatus is populated by Run.
	ExitStatus int

	proc   ProcessFunc
	stdout bytes.Buffer
	stderr bytes.Buffer
}

// HostRecorder records lines forwarded to the host interpreter instead of
// executing them.
type HostRecorder struct {
	Lines []string

	// Output, if set, is written to stdout for every forwarded line.
	Output string

	// Err, if set, is returned as a launch failure.
	Err error
}

func (h *HostRecorder) Run(ctx context.Context, dir, command string, stdin io.Reader, stdout, stderr io.Writer) error {
	if h.Err != nil {
		return h.Err
	}
	h.Lines = append(h.Lines, command)
	if h.Output != "" {
		fmt.Fprint(stdout, h.Output)
	}
	return nil
}

// NewSession returns a session backed by MemMapFs and buffers, with colors
// off and a fast follow interval so tests don't sleep.
func NewSession() *session.Session {
	s := session.New()
	s.FS = afero.NewMemMapFs()
	s.Stdin = strings.NewReader("")
	s.Stdout = io.Discard
	s.Stderr = io.Discard
	s.Log = zap.NewNop()
	s.Color = false
	s.FollowInterval = time.Millisecond
	s.Host = &HostRecorder{}
	if err := s.FS.MkdirAll("/home/mint", 0755); err != nil {
		panic(err)
	}
	if err := s.Chdir("/home/mint"); err != nil {
		panic(err)
	}
	return s
}

// Command prepares proc to run with the given argv.
func Command(proc ProcessFunc, name string, args ...string) *Cmd {
	cmd := &Cmd{
		Session: NewSession(),
		Args:    append([]string{name}, args...),
		proc:    proc,
	}
	cmd.Session.Stdout = &cmd.stdout
	cmd.Session.Stderr = &cmd.stderr
	return cmd
}

// Run executes the command and records its exit status.
func (c *Cmd) Run() error {
	return c.RunContext(context.Background())
}

// RunContext executes the command under ctx.
func (c *Cmd) RunContext(ctx context.Context) error {
	c.ExitStatus = c.proc(ctx, c.Session, c.Args)
	return nil
}

// Output runs the command and returns what it wrote to stdout.
func (c *Cmd) Output() (string, error) {
	err := c.Run()
	return c.stdout.String(), err
}

// CombinedOutput runs the command and returns stdout followed by stderr.
func (c *Cmd) CombinedOutput() (string, error) {
	err := c.Run()
	return c.stdout.String() + c.stderr.String(), err
}

// Stdout returns everything written to standard output so far.
func (c *Cmd) Stdout() string { return c.stdout.String() }

// Stderr returns everything written to standard error so far.
func (c *Cmd) Stderr() string { return c.stderr.String() }
