package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintsh/mintsh/core/session/sessiontest"
)

func TestCat(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Cat), "cat", "notes.txt")
	require.NoError(t, afero.WriteFile(cmd.Session.FS, "/home/mint/notes.txt", []byte("alpha\nbeta\n"), 0644))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "alpha\nbeta\n", out)
}

func TestCat_multipleFiles(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Cat), "cat", "a.txt", "b.txt")
	require.NoError(t, afero.WriteFile(cmd.Session.FS, "/home/mint/a.txt", []byte("one\n"), 0644))
	require.NoError(t, afero.WriteFile(cmd.Session.FS, "/home/mint/b.txt", []byte("two\n"), 0644))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", out)
}

func TestCat_missingFile(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Cat), "cat", "nope.txt")
	assert.NoError(t, cmd.Run())
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Contains(t, cmd.Stderr(), "cat:")
}

func TestCat_noArgs(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Cat), "cat")
	assert.NoError(t, cmd.Run())
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Contains(t, cmd.Stderr(), "missing file")
}
