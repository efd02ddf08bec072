package sourcelink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebURL(t *testing.T) {
	cases := map[string]string{
		"git@github.com:org/repo.git":         "https://github.com/org/repo",
		"https://github.com/org/repo.git":     "https://github.com/org/repo",
		"ssh://git@gitlab.com/group/repo.git": "https://gitlab.com/group/repo",
		"https://user@example.com/org/repo/":  "https://example.com/org/repo",
	}
	for in, want := range cases {
		got, err := WebURL(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := WebURL("/srv/git/repo")
	require.ErrorIs(t, err, ErrNoRemote)
}

func TestDetectRepositoryURL(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&ggitcfg.RemoteConfig{Name: "origin", URLs: []string{"git@github.com:antvis/site.git"}})
	require.NoError(t, err)

	nested := filepath.Join(dir, "docs", "api")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := DetectRepositoryURL(nested)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/antvis/site", got)
}

func TestDetectRepositoryURL_NoRemote(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = DetectRepositoryURL(dir)
	require.ErrorIs(t, err, ErrNoRemote)
}

func TestDetectRepositoryURL_NotARepository(t *testing.T) {
	_, err := DetectRepositoryURL(t.TempDir())
	require.Error(t, err)
}
