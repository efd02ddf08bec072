package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
site:
  languages: [en, zh]
content:
  dir: ./site
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Site.DefaultLanguage)
	assert.Equal(t, "docs", cfg.Site.Anchor)
	assert.Equal(t, "master", cfg.Site.EditBranch)
	assert.Equal(t, 2, cfg.Content.TOCMinLevel)
	assert.Equal(t, 3, cfg.Content.TOCMaxLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, "docnav.index.updated", cfg.Events.Subject)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCNAV_TEST_REPO", "https://github.com/acme/docs")
	path := writeConfig(t, `
site:
  repository_url: ${DOCNAV_TEST_REPO}
  categories:
    - slug: api/general
      title: {en: General, zh: 通用}
      order: 1
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/docs", cfg.Site.RepositoryURL)
	require.Len(t, cfg.Site.Categories, 1)
	assert.Equal(t, "通用", cfg.Site.Categories[0].LocalizedTitle("zh", "general"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "site: [unclosed"))
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad language", "site:\n  languages: [\"not a language\"]\n"},
		{"default not listed", "site:\n  languages: [en]\n  default_language: zh\n"},
		{"duplicate language", "site:\n  languages: [en, en]\n"},
		{"anchor with slash", "site:\n  anchor: docs/api\n"},
		{"shallow category", "site:\n  categories:\n    - slug: api\n"},
		{"duplicate category", "site:\n  categories:\n    - slug: api/general\n    - slug: api/general\n"},
		{"inverted toc range", "content:\n  toc_min_level: 4\n  toc_max_level: 2\n"},
		{"relative repository", "site:\n  repository_url: github.com/acme\n"},
		{"port out of range", "server:\n  port: 70000\n"},
		{"unknown backoff", "events:\n  retry:\n    backoff: random\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.True(t, derrors.IsCategory(err, derrors.CategoryValidation), "got %v", err)
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docnav.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "zh"}, cfg.Site.Languages)
	assert.Len(t, cfg.Site.Categories, 2)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
	require.NoError(t, Init(path, true))
}
