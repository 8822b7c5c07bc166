package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintsh/mintsh/core/session/sessiontest"
)

func TestCd(t *testing.T) {
	s := sessiontest.NewSession()
	ctx := context.Background()
	require.NoError(t, s.FS.MkdirAll("/home/mint/work", 0755))

	assert.Equal(t, 0, Cd(ctx, s, []string{"cd", "work"}))
	assert.Equal(t, "/home/mint/work", s.Getwd())

	assert.Equal(t, 0, Cd(ctx, s, []string{"cd", ".."}))
	assert.Equal(t, "/home/mint", s.Getwd())
}

func TestCd_missingDirectory(t *testing.T) {
	s := sessiontest.NewSession()

	assert.Equal(t, 1, Cd(context.Background(), s, []string{"cd", "nope"}))
	assert.Equal(t, "/home/mint", s.Getwd())
}

func TestCd_noArg(t *testing.T) {
	s := sessiontest.NewSession()
	assert.Equal(t, 1, Cd(context.Background(), s, []string{"cd"}))
}

func TestPwd(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Pwd), "pwd")
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "/home/mint\n", out)
}
