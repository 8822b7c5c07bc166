package commands

import (
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintsh/mintsh/core/session/sessiontest"
)

func TestClear(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Clear), "clear")
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "\x1b[2J\x1b[H", out)
}

func TestUptime_readsProcUptime(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Uptime), "uptime")
	require.NoError(t, afero.WriteFile(cmd.Session.FS, "/proc/uptime", []byte("12345.67 4242.0\n"), 0444))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "uptime: 12345 seconds\n", out)
}

func TestUptime_processFallback(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Uptime), "uptime")
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Contains(t, out, "uptime (process): ")
}

func TestRandom_range(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Random), "random", "5", "7", "20")
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)

	fields := strings.Fields(out)
	assert.Len(t, fields, 20)
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 7)
	}
}

func TestRandom_badArgs(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Random), "random", "ten")
	assert.NoError(t, cmd.Run())
	assert.Equal(t, 1, cmd.ExitStatus)

	cmd = sessiontest.Command(sessiontest.ProcessFunc(Random), "random", "9", "1")
	assert.NoError(t, cmd.Run())
	assert.Equal(t, 1, cmd.ExitStatus)
}
