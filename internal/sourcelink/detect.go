package sourcelink

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
)

// ErrNoRemote is returned when a checkout has no usable remote.
var ErrNoRemote = errors.New("repository has no usable remote")

// DetectRepositoryURL returns the web URL of the "origin" remote of the git
// checkout containing dir. SSH remotes are converted to HTTPS and a trailing
// ".git" is removed.
func DetectRepositoryURL(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repository at %s: %w", dir, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoRemote, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrNoRemote
	}
	return WebURL(urls[0])
}

// WebURL converts a clone URL into the repository's browsable HTTPS URL.
func WebURL(cloneURL string) (string, error) {
	normalized := normalizeSSHURL(strings.TrimSpace(cloneURL))
	u, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("parse remote url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q is not a hosted remote", ErrNoRemote, cloneURL)
	}
	if u.Scheme == "ssh" || u.Scheme == "git" {
		u.Scheme = "https"
	}
	u.User = nil
	u.Path = strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), ".git")
	return u.String(), nil
}

// normalizeSSHURL converts scp-style git@host:owner/repo remotes to HTTPS.
func normalizeSSHURL(repoURL string) string {
	if !strings.HasPrefix(repoURL, "git@") {
		return repoURL
	}
	parts := strings.SplitN(strings.TrimPrefix(repoURL, "git@"), ":", 2)
	if len(parts) == 2 {
		return "https://" + parts[0] + "/" + parts[1]
	}
	return repoURL
}
