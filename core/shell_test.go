package core

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintsh/mintsh/core/config"
	"github.com/mintsh/mintsh/core/session"
	"github.com/mintsh/mintsh/core/session/sessiontest"
)

// testShell builds a Shell around an in-memory session without a line
// editor; Eval never touches it.
func testShell() (*Shell, *session.Session, *bytes.Buffer, *bytes.Buffer) {
	sess := sessiontest.NewSession()
	var stdout, stderr bytes.Buffer
	sess.Stdout = &stdout
	sess.Stderr = &stderr

	shell := &Shell{
		Session: sess,
		cfg:     config.Default(),
		log:     sess.Log,
	}
	return shell, sess, &stdout, &stderr
}

func TestEval_dispatchesBuiltin(t *testing.T) {
	shell, sess, stdout, _ := testShell()

	assert.True(t, shell.Eval(context.Background(), "echo hello world"))
	assert.Equal(t, "hello world\n", stdout.String())
	assert.Equal(t, []string{"echo hello world"}, sess.History)
}

func TestEval_historyRecordsEveryLineInOrder(t *testing.T) {
	shell, sess, _, _ := testShell()
	ctx := context.Background()

	shell.Eval(ctx, "echo one")
	shell.Eval(ctx, "cat missing.txt")
	shell.Eval(ctx, "some-unknown-binary --flag")

	assert.Equal(t, []string{
		"echo one",
		"cat missing.txt",
		"some-unknown-binary --flag",
	}, sess.History)
}

func TestEval_historyStoresSubstitutedLine(t *testing.T) {
	shell, sess, stdout, _ := testShell()
	sess.Aliases.Define("greet", "echo hi")

	shell.Eval(context.Background(), "greet there")
	assert.Equal(t, "hi there\n", stdout.String())
	assert.Equal(t, []string{"echo hi there"}, sess.History)
}

func TestEval_aliasSubstitutionIsOnePass(t *testing.T) {
	shell, sess, _, _ := testShell()
	sess.Aliases.Define("a", "b")
	sess.Aliases.Define("b", "a")

	shell.Eval(context.Background(), "a")
	// One pass only: a resolves to b, which is forwarded, not re-resolved.
	recorder := sess.Host.(*sessiontest.HostRecorder)
	assert.Equal(t, []string{"b"}, recorder.Lines)
}

func TestEval_forwardsUnknownLinesVerbatim(t *testing.T) {
	shell, sess, stdout, _ := testShell()
	recorder := sess.Host.(*sessiontest.HostRecorder)
	recorder.Output = "Linux\n"

	assert.True(t, shell.Eval(context.Background(), `uname -a "quoted arg"`))
	require.Len(t, recorder.Lines, 1)
	assert.Equal(t, `uname -a "quoted arg"`, recorder.Lines[0])
	assert.Equal(t, "Linux\n", stdout.String())
}

func TestEval_launchFailureIsNotFatal(t *testing.T) {
	shell, sess, _, stderr := testShell()
	sess.Host.(*sessiontest.HostRecorder).Err = errors.New("no such interpreter")

	assert.True(t, shell.Eval(context.Background(), "bogus command"))
	assert.Contains(t, stderr.String(), "failed to run: bogus command")
}

func TestEval_exitStopsTheLoop(t *testing.T) {
	shell, _, _, _ := testShell()

	assert.True(t, shell.Eval(context.Background(), "echo before"))
	assert.False(t, shell.Eval(context.Background(), "exit"))
}

func TestEval_quitStopsTheLoop(t *testing.T) {
	shell, _, _, _ := testShell()
	assert.False(t, shell.Eval(context.Background(), "quit"))
}

func TestPrompt_expandsWorkingDirectory(t *testing.T) {
	shell, sess, _, _ := testShell()
	shell.cfg.Prompt = `[\w]> `

	require.NoError(t, sess.FS.MkdirAll("/srv/app", 0755))
	require.NoError(t, sess.Chdir("/srv/app"))

	assert.Equal(t, "[/srv/app]> ", shell.Prompt())
}

func TestPrompt_literalTextPreserved(t *testing.T) {
	shell, _, _, _ := testShell()
	shell.cfg.Prompt = "mint> "
	assert.Equal(t, "mint> ", shell.Prompt())
}
