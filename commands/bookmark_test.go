package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintsh/mintsh/core/session/sessiontest"
)

func TestBookmark_roundTrip(t *testing.T) {
	s := sessiontest.NewSession()
	ctx := context.Background()
	require.NoError(t, s.FS.MkdirAll("/data", 0755))

	assert.Equal(t, 0, Bookmark(ctx, s, []string{"bookmark", "home"}))
	assert.Equal(t, "/home/mint", s.Bookmarks["home"])

	require.NoError(t, s.Chdir("/data"))
	assert.Equal(t, 0, Goto(ctx, s, []string{"goto", "home"}))
	assert.Equal(t, "/home/mint", s.Getwd())
}

func TestBookmark_usage(t *testing.T) {
	s := sessiontest.NewSession()
	ctx := context.Background()

	assert.Equal(t, 1, Bookmark(ctx, s, []string{"bookmark"}))
	assert.Equal(t, 1, Goto(ctx, s, []string{"goto"}))
	assert.Equal(t, 1, Goto(ctx, s, []string{"goto", "missing"}))
	assert.Equal(t, 1, Unbookmark(ctx, s, []string{"unbookmark", "missing"}))
}

func TestBookmarks_list(t *testing.T) {
	cmd := sessiontest.Command(sessiontest.ProcessFunc(Bookmarks), "bookmarks")
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "(no bookmarks)\n", out)

	cmd = sessiontest.Command(sessiontest.ProcessFunc(Bookmarks), "bookmarks")
	cmd.Session.Bookmarks["work"] = "/srv/work"
	cmd.Session.Bookmarks["docs"] = "/srv/docs"
	out, err = cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "docs -> /srv/docs\nwork -> /srv/work\n", out)
}

func TestUnbookmark(t *testing.T) {
	s := sessiontest.NewSession()
	s.Bookmarks["tmp"] = "/tmp"

	assert.Equal(t, 0, Unbookmark(context.Background(), s, []string{"unbookmark", "tmp"}))
	assert.Empty(t, s.Bookmarks)
}

func TestGoto_missingDirectory(t *testing.T) {
	s := sessiontest.NewSession()
	s.Bookmarks["gone"] = "/no/such/dir"

	assert.Equal(t, 1, Goto(context.Background(), s, []string{"goto", "gone"}))
	assert.Equal(t, "/home/mint", s.Getwd())
}
