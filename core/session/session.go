// Package session holds the state of one interactive shell session:
// command history, the alias table, bookmarks and the working directory.
// Nothing in here is persisted; the state lives and dies with the process.
package session

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultFollowInterval is the poll interval used by follow mode when the
// session doesn't override it.
const DefaultFollowInterval = 200 * time.Millisecond

// HostRunner forwards a raw command line to the host's command interpreter
// and streams its combined output into the given writers until it exits.
type HostRunner interface {
	Run(ctx context.Context, dir, command string, stdin io.Reader, stdout, stderr io.Writer) error
}

// Session is the mutable per-process shell state. It is created once at
// startup, passed by reference into every command handler, and never
// persisted. The REPL is single threaded so no locking is required.
type Session struct {
	// FS is the filesystem all file builtins operate on.
	FS afero.Fs

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Host runs lines that don't match a builtin.
	Host HostRunner

	// Log receives diagnostic events, not user output.
	Log *zap.Logger

	// Color enables the Mint palette on user output.
	Color bool

	// FollowInterval is the poll interval for tail -f.
	FollowInterval time.Duration

	// History is the ordered log of executed lines, newest last.
	History []string

	// ResetLineHistory, when set, also clears the line editor's recall
	// buffer on history -c.
	ResetLineHistory func()

	Aliases   *AliasTable
	Bookmarks map[string]string

	// Started is used for the process-uptime fallback.
	Started time.Time

	cwd           string
	exitRequested bool
}

// New returns a session bound to the real OS: OsFs, standard streams and
// the current working directory.
func New() *Session {
	wd, err := os.Getwd()
	if err != nil {
		wd = "/"
	}

	return &Session{
		FS:             afero.NewOsFs(),
		Stdin:          os.Stdin,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Log:            zap.NewNop(),
		FollowInterval: DefaultFollowInterval,
		Aliases:        NewAliasTable(),
		Bookmarks:      make(map[string]string),
		Started:        time.Now(),
		cwd:            wd,
	}
}

// Getwd returns the session's working directory.
func (s *Session) Getwd() string {
	if s.cwd == "" {
		return "/"
	}
	return s.cwd
}

// Chdir changes the session's working directory after verifying the target
// exists and is a directory.
func (s *Session) Chdir(dir string) error {
	abs := s.Abs(dir)
	ok, err := afero.DirExists(s.FS, abs)
	if err != nil {
		return err
	}
	if !ok {
		return &os.PathError{Op: "chdir", Path: dir, Err: os.ErrNotExist}
	}
	s.cwd = abs
	return nil
}

// Abs resolves path against the session's working directory.
func (s *Session) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.Getwd(), path)
}

// AppendHistory records one executed line. The line is stored after alias
// substitution but before tokenizing, including lines that later error out.
func (s *Session) AppendHistory(line string) {
	s.History = append(s.History, line)
}

// ClearHistory drops the history log and the line editor's recall buffer.
func (s *Session) ClearHistory() {
	s.History = nil
	if s.ResetLineHistory != nil {
		s.ResetLineHistory()
	}
}

// RequestExit asks the REPL to terminate after the current command.
func (s *Session) RequestExit() {
	s.exitRequested = true
}

// ExitRequested reports whether exit or quit ran.
func (s *Session) ExitRequested() bool {
	return s.exitRequested
}
