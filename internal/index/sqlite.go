package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/docnav/internal/content"
	derrors "git.home.luguber.info/inful/docnav/internal/errors"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (and creates if needed) a page index.
// Use ":memory:" for an in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, derrors.IndexError("open", fmt.Errorf("open sqlite database: %w", err))
	}
	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, derrors.IndexError("initialize", fmt.Errorf("initialize schema: %w", err))
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		slug TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		language TEXT NOT NULL,
		relative_path TEXT NOT NULL,
		source_path TEXT NOT NULL,
		reading_time INTEGER NOT NULL,
		fingerprint TEXT NOT NULL,
		toc TEXT NOT NULL DEFAULT '',
		html TEXT NOT NULL DEFAULT '',
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_pages_language ON pages(language);
	`
	_, err := s.db.Exec(schema)
	return err
}

const pageColumns = "slug, title, sort_order, language, relative_path, source_path, reading_time, fingerprint, toc, html"

// Upsert writes pages in one transaction.
func (s *SQLiteStore) Upsert(ctx context.Context, pages []content.Page) (UpsertStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats UpsertStats
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, derrors.IndexError("upsert", fmt.Errorf("begin transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().Unix()
	for _, p := range pages {
		existing, err := scanPage(tx.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE slug = ?", p.Slug))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			stats.Added++
		case err != nil:
			return UpsertStats{}, derrors.IndexError("upsert", fmt.Errorf("query page %s: %w", p.Slug, err))
		case existing == p:
			stats.Unchanged++
			continue
		default:
			stats.Updated++
		}

		_, err = tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO pages ("+pageColumns+", updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			p.Slug, p.Title, p.Order, p.Language, p.RelativePath, p.SourcePath,
			p.ReadingTime, p.Fingerprint, p.TableOfContents, p.HTML, now,
		)
		if err != nil {
			return UpsertStats{}, derrors.IndexError("upsert", fmt.Errorf("write page %s: %w", p.Slug, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return UpsertStats{}, derrors.IndexError("upsert", fmt.Errorf("commit: %w", err))
	}
	return stats, nil
}

// Pages returns every stored page ordered by slug.
func (s *SQLiteStore) Pages(ctx context.Context) ([]content.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT "+pageColumns+" FROM pages ORDER BY slug")
	if err != nil {
		return nil, derrors.IndexError("list", fmt.Errorf("query pages: %w", err))
	}
	defer rows.Close()

	var pages []content.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, derrors.IndexError("list", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, derrors.IndexError("list", fmt.Errorf("iterate rows: %w", err))
	}
	return pages, nil
}

// Page returns a single page by slug.
func (s *SQLiteStore) Page(ctx context.Context, slug string) (content.Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE slug = ?", slug)
	p, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Page{}, derrors.PageNotFound(slug)
	}
	if err != nil {
		return content.Page{}, derrors.IndexError("get", err)
	}
	return p, nil
}

// Remove deletes pages by slug and returns how many existed.
func (s *SQLiteStore) Remove(ctx context.Context, slugs []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, slug := range slugs {
		res, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE slug = ?", slug)
		if err != nil {
			return removed, derrors.IndexError("remove", fmt.Errorf("delete page %s: %w", slug, err))
		}
		if n, err := res.RowsAffected(); err == nil {
			removed += int(n)
		}
	}
	return removed, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPage(r rowScanner) (content.Page, error) {
	var p content.Page
	err := r.Scan(&p.Slug, &p.Title, &p.Order, &p.Language, &p.RelativePath, &p.SourcePath,
		&p.ReadingTime, &p.Fingerprint, &p.TableOfContents, &p.HTML)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("scan page: %w", err)
	}
	return p, nil
}
