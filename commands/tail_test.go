package commands

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintsh/mintsh/core/session/sessiontest"
)

func TestTail_lastLines(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}

	cmd := sessiontest.Command(sessiontest.ProcessFunc(Tail), "tail", "big.txt")
	require.NoError(t, afero.WriteFile(cmd.Session.FS, "/home/mint/big.txt", []byte(sb.String()), 0644))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "line 6", lines[0])
	assert.Equal(t, "line 15", lines[9])
}

func TestTail_shortFile(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Tail), "tail", "short.txt")
	require.NoError(t, afero.WriteFile(cmd.Session.FS, "/home/mint/short.txt", []byte("a\nb\n"), 0644))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestTail_followStopsOnCancel(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Tail), "tail", "-f", "app.log")
	require.NoError(t, afero.WriteFile(cmd.Session.FS, "/home/mint/app.log", []byte("started\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, cmd.RunContext(ctx))
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tail -f did not stop after cancellation")
	}
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Contains(t, cmd.Stdout(), "started\n")
}

func TestTail_followMissingFile(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Tail), "tail", "-f", "nope.log")
	assert.NoError(t, cmd.Run())
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Contains(t, cmd.Stderr(), "cannot open file")
}

func TestTail_missingFile(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Tail), "tail")
	assert.NoError(t, cmd.Run())
	assert.Equal(t, 1, cmd.ExitStatus)
}
