package content

import (
	"path"
	"path/filepath"
	"strings"
)

const indexName = "index"

// pathInfo is what a file's location says about its page.
type pathInfo struct {
	slug     string
	language string
	name     string
}

// derivePath maps a path relative to the anchor directory to a slug.
// "guide/setup.zh.md" becomes /zh/<anchor>/guide/setup when zh is a known
// language; index files collapse onto their directory.
func derivePath(rel, anchor, defaultLanguage string, languages map[string]bool) pathInfo {
	rel = filepath.ToSlash(rel)
	dir, file := path.Split(rel)
	name := strings.TrimSuffix(file, path.Ext(file))

	lang := defaultLanguage
	if i := strings.LastIndex(name, "."); i > 0 && languages[name[i+1:]] {
		lang = name[i+1:]
		name = name[:i]
	}

	dir = strings.Trim(dir, "/")
	parts := []string{"", lang, anchor}
	if dir != "" {
		parts = append(parts, dir)
	}
	if name != indexName {
		parts = append(parts, name)
	} else if dir != "" {
		name = path.Base(dir)
	} else {
		name = anchor
	}
	return pathInfo{slug: strings.Join(parts, "/"), language: lang, name: name}
}

// titleFromName turns a file name into a readable fallback title.
func titleFromName(name string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(name)
}
