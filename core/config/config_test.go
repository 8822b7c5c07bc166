package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_isValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Config)
		wantErr bool
	}{
		"default":           {func(c *Config) {}, false},
		"bad color":         {func(c *Config) { c.Color = "sometimes" }, true},
		"empty prompt":      {func(c *Config) { c.Prompt = "" }, true},
		"negative history":  {func(c *Config) { c.HistoryLimit = -1 }, true},
		"zero follow poll":  {func(c *Config) { c.FollowIntervalMillis = 0 }, true},
		"color never is ok": {func(c *Config) { c.Color = ColorNever }, false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_roundTrip(t *testing.T) {
	dir := t.TempDir()

	want := Default()
	want.Banner = "hello"
	want.FollowIntervalMillis = 50
	require.NoError(t, Write(dir, want))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 50*time.Millisecond, got.FollowInterval())

	// Loading by file name works too.
	got, err = Load(filepath.Join(dir, ConfigurationName))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_rejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigurationName), []byte("bogus_key: 1\n"), 0644)
	require.NoError(t, err)

	_, err = Load(dir)
	assert.Error(t, err)
}

func TestWrite_refusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, Default()))
	assert.Error(t, Write(dir, Default()))
}
