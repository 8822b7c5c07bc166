// Package core wires the interactive shell: the readline REPL, prompt
// rendering, alias substitution, tokenizing, and dispatch to the builtin
// registry with host fallback.
package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"os/user"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mintsh/mintsh/commands"
	"github.com/mintsh/mintsh/core/config"
	"github.com/mintsh/mintsh/core/session"
)

var (
	promptUserHost = color.New(38, 5, 121)
	promptPath     = color.New(color.FgCyan)
	promptSigil    = color.New(color.FgHiGreen, color.Bold)
	bannerColor    = color.New(38, 5, 121)
	errColor       = color.New(color.FgRed)
)

// Shell is the interactive REPL bound to one session.
type Shell struct {
	Session  *session.Session
	Readline *readline.Instance

	cfg *config.Config
	log *zap.Logger
}

// NewShell builds the REPL around the session's streams.
func NewShell(cfg *config.Config, sess *session.Session) (*Shell, error) {
	stdinFd := int(os.Stdin.Fd())

	rlCfg := &readline.Config{
		Stdin:        readline.NewCancelableStdin(os.Stdin),
		Stdout:       sess.Stdout,
		Stderr:       sess.Stderr,
		HistoryLimit: cfg.HistoryLimit,
		FuncGetWidth: func() int {
			width, _, err := term.GetSize(stdinFd)
			if err != nil {
				return 80
			}
			return width
		},
		FuncIsTerminal: func() bool {
			return term.IsTerminal(stdinFd)
		},
	}
	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	shell := &Shell{
		Session:  sess,
		Readline: rl,
		cfg:      cfg,
		log:      sess.Log,
	}
	sess.ResetLineHistory = func() {
		rl.Operation.ResetHistory()
	}

	return shell, nil
}

// Prompt renders the configured prompt template. Supported escapes:
// \u user, \h hostname, \w working directory, \$ sigil.
func (s *Shell) Prompt() string {
	prompt := s.cfg.Prompt

	username := os.Getenv("USER")
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	hostname, _ := os.Hostname()

	pwd := s.Session.Getwd()
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}

	sigil := "$"
	if os.Getuid() == 0 {
		sigil = "#"
	}

	if s.Session.Color {
		username = promptUserHost.Sprint(username)
		hostname = promptUserHost.Sprint(hostname)
		pwd = promptPath.Sprint(pwd)
		sigil = promptSigil.Sprint(sigil)
	}

	prompt = strings.ReplaceAll(prompt, `\u`, username)
	prompt = strings.ReplaceAll(prompt, `\h`, hostname)
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)
	prompt = strings.ReplaceAll(prompt, `\$`, sigil)
	return prompt
}

// Run is the read-substitute-tokenize-dispatch loop. It returns when the
// input closes or exit/quit runs.
func (s *Shell) Run(ctx context.Context) {
	if s.cfg.Banner != "" {
		banner := s.cfg.Banner
		if s.Session.Color {
			banner = bannerColor.Sprint(banner)
		}
		fmt.Fprintln(s.Session.Stdout, banner)
	}

	for {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue // Ctrl-C at the prompt abandons the line.

		case err != nil:
			s.log.Warn("readline", zap.Error(err))
			continue

		case strings.TrimSpace(line) == "":
			continue

		default:
			// Ctrl-C during a command cancels follow mode or a host
			// subprocess without killing the shell.
			cmdCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
			cont := s.Eval(cmdCtx, line)
			stop()
			if !cont {
				return
			}
		}
	}
}

// Eval runs one accepted input line: one alias substitution pass, history
// append, tokenize, dispatch. It reports whether the REPL should continue.
func (s *Shell) Eval(ctx context.Context, line string) bool {
	sess := s.Session

	line = sess.Aliases.Resolve(line)

	// History records the substituted line before tokenizing, for every
	// accepted line, even ones that fail.
	sess.AppendHistory(line)

	tokens := session.Split(line)
	if len(tokens) == 0 {
		return true
	}

	cmd, ok := commands.Lookup(tokens[0])
	if !ok {
		s.log.Debug("forwarding to host", zap.String("line", line))
		if err := sess.Host.Run(ctx, sess.Getwd(), line, sess.Stdin, sess.Stdout, sess.Stderr); err != nil {
			s.reportLaunchError(line, err)
		}
		return true
	}

	s.log.Debug("dispatch", zap.String("command", tokens[0]))
	status := cmd.Proc(ctx, sess, tokens)
	if status != 0 {
		s.log.Debug("command failed",
			zap.String("command", tokens[0]),
			zap.Int("status", status))
	}

	return !sess.ExitRequested()
}

func (s *Shell) reportLaunchError(line string, err error) {
	s.log.Warn("host launch failed", zap.String("line", line), zap.Error(err))
	msg := fmt.Sprintf("failed to run: %s", line)
	if s.Session.Color {
		msg = errColor.Sprint(msg)
	}
	fmt.Fprintln(s.Session.Stderr, msg)
}

// Close releases the line editor.
func (s *Shell) Close() error {
	return s.Readline.Close()
}
