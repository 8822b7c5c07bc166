package commands

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintsh/mintsh/core/session/sessiontest"
)

func TestFind(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Find), "find")
	fs := cmd.Session.FS
	require.NoError(t, afero.WriteFile(fs, "/home/mint/a/x.txt", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/home/mint/b.txt", []byte("b"), 0644))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)

	for _, want := range []string{"/home/mint\n", "/home/mint/a\n", "/home/mint/a/x.txt\n", "/home/mint/b.txt\n"} {
		assert.Contains(t, out, want)
	}
}

func TestCount(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Count), "count")
	fs := cmd.Session.FS
	require.NoError(t, afero.WriteFile(fs, "/home/mint/a/x.txt", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/home/mint/a/y.txt", []byte("y"), 0644))
	require.NoError(t, fs.MkdirAll("/home/mint/empty", 0755))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "files: 2    dirs: 2\n", out)
}

func TestDu(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Du), "du")
	require.NoError(t, afero.WriteFile(cmd.Session.FS, "/home/mint/big.bin", make([]byte, 3072), 0644))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\t.\n"), out)
	assert.Equal(t, "3K\t.\n", out)
}

func TestDu_humanReadable(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Du), "du", "-h")
	require.NoError(t, afero.WriteFile(cmd.Session.FS, "/home/mint/big.bin", make([]byte, 5*1024), 0644))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "5.1K\t.\n", out)
}
