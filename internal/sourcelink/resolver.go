// Package sourcelink derives "edit this page" URLs for documentation sources.
package sourcelink

import "strings"

const (
	// DefaultBranch is the branch whose tree view is rewritten to an edit view.
	DefaultBranch = "master"
	// DefaultPrefix is the content root inside the repository.
	DefaultPrefix = "docs"
)

// Resolve returns the editor URL for relativePath under prefix in the repository
// at baseURL. A base pointing at the master tree view (".../tree/master/pkg") is
// rewritten to the edit view; any other base gets "/edit/master" appended.
// Resolve performs no I/O and does not check that the URL exists.
func Resolve(baseURL, relativePath, prefix string) string {
	return Resolver{Branch: DefaultBranch, Prefix: prefix}.Resolve(baseURL, relativePath)
}

// Resolver builds edit URLs for a fixed branch and content prefix.
type Resolver struct {
	Branch string
	Prefix string
}

// Resolve is the method form of the package-level Resolve.
func (r Resolver) Resolve(baseURL, relativePath string) string {
	branch := r.Branch
	if branch == "" {
		branch = DefaultBranch
	}
	tree := "/tree/" + branch + "/"
	edit := "/edit/" + branch + "/"

	base := baseURL
	if strings.HasSuffix(base, "/tree/"+branch) {
		base += "/"
	}
	tail := joinPath(r.Prefix, relativePath)

	if strings.Contains(base, tree) {
		rewritten := strings.Replace(base, tree, edit, 1)
		return strings.TrimSuffix(rewritten, "/") + "/" + tail
	}
	return strings.TrimSuffix(base, "/") + edit + tail
}

func joinPath(prefix, rel string) string {
	prefix = strings.Trim(prefix, "/")
	rel = strings.TrimPrefix(rel, "/")
	if prefix == "" {
		return rel
	}
	return prefix + "/" + rel
}
