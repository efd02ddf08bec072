package content

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inful/mdfp"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/markdown"
	"git.home.luguber.info/inful/docnav/internal/slugpath"
)

// Loader scans a content directory for markdown pages.
type Loader struct {
	Dir             string
	Anchor          string
	DefaultLanguage string
	Languages       []string
	TOCMinLevel     int
	TOCMaxLevel     int
	// RenderHTML controls whether Page.HTML is populated.
	RenderHTML bool
}

// AnchorDir is the directory pages are discovered under.
func (l *Loader) AnchorDir() string {
	return filepath.Join(l.Dir, l.anchor())
}

func (l *Loader) anchor() string {
	if l.Anchor == "" {
		return slugpath.DefaultAnchor
	}
	return l.Anchor
}

// Load walks the anchor directory and returns its pages sorted by slug.
// Drafts are skipped. The first file to claim a slug wins.
func (l *Loader) Load(ctx context.Context) ([]Page, error) {
	root := l.AnchorDir()
	if st, err := os.Stat(root); err != nil || !st.IsDir() {
		return nil, derrors.ContentDirMissing(root)
	}

	languages := make(map[string]bool, len(l.Languages))
	for _, lang := range l.Languages {
		languages[lang] = true
	}

	var pages []Page
	seen := make(map[string]string)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}

		page, draft, err := l.loadFile(root, p, languages)
		if err != nil {
			return err
		}
		if draft {
			slog.Debug("Skipping draft page", logfields.File(p))
			return nil
		}
		if prev, dup := seen[page.Slug]; dup {
			slog.Warn("Duplicate page slug, keeping first",
				logfields.Slug(page.Slug), logfields.File(p), slog.String("kept", prev))
			return nil
		}
		seen[page.Slug] = p
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		if derrors.IsCategory(err, derrors.CategoryContent) || ctx.Err() != nil {
			return nil, err
		}
		return nil, derrors.Wrap(err, derrors.CategoryFileSystem, derrors.SeverityError, "failed to walk content directory").
			WithContext("dir", root)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
	slog.Debug("Loaded content", logfields.Path(root), logfields.Pages(len(pages)))
	return pages, nil
}

// LoadFile reads a single page. The path must lie under the anchor directory.
func (l *Loader) LoadFile(path string) (Page, error) {
	languages := make(map[string]bool, len(l.Languages))
	for _, lang := range l.Languages {
		languages[lang] = true
	}
	page, _, err := l.loadFile(l.AnchorDir(), path, languages)
	return page, err
}

func (l *Loader) loadFile(root, path string, languages map[string]bool) (Page, bool, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return Page{}, false, derrors.ContentError(path, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Page{}, false, derrors.ContentError(path, err)
	}
	meta, fm, body, err := frontmatter.Parse(raw)
	if err != nil {
		return Page{}, false, derrors.ContentError(path, err)
	}

	info := derivePath(rel, l.anchor(), l.DefaultLanguage, languages)
	page := Page{
		Slug:            info.slug,
		Title:           meta.Title,
		Order:           meta.Order,
		Language:        info.language,
		RelativePath:    filepath.ToSlash(rel),
		SourcePath:      path,
		ReadingTime:     ReadingTime(markdown.WordCount(body)),
		Fingerprint:     Fingerprint(fm, body),
		TableOfContents: markdown.TableOfContents(body, info.slug, l.TOCMinLevel, l.TOCMaxLevel),
	}
	if page.Title == "" {
		page.Title = titleFromName(info.name)
	}
	if l.RenderHTML {
		if page.HTML, err = markdown.Render(body); err != nil {
			return Page{}, false, derrors.ContentError(path, err)
		}
	}
	return page, meta.Draft, nil
}

// Fingerprint hashes a page's frontmatter and body. A stored fingerprint field
// is ignored so writing it back does not change the result.
func Fingerprint(fm, body []byte) string {
	lines := strings.Split(strings.TrimSuffix(string(fm), "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, mdfp.FingerprintField+":") {
			continue
		}
		kept = append(kept, line)
	}
	return mdfp.CalculateFingerprintFromParts(strings.Join(kept, "\n"), string(body))
}
