package extract

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ziadkadry99/on-the-issues/internal/db"
)

// Cache stores parsed articles by content hash so unchanged files are not
// parsed again on the next run.
type Cache struct {
	db *db.DB
}

// NewCache creates a Cache backed by the given database.
func NewCache(database *db.DB) *Cache {
	return &Cache{db: database}
}

// Get returns the cached article for hash. The returned article has no Path.
func (c *Cache) Get(ctx context.Context, hash string) (*Article, bool, error) {
	var (
		title string
		paras string
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT title, paragraphs FROM articles WHERE content_hash = ?`, hash,
	).Scan(&title, &paras)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying article cache: %w", err)
	}

	a := &Article{Title: title}
	if err := json.Unmarshal([]byte(paras), &a.Paragraphs); err != nil {
		return nil, false, fmt.Errorf("decoding cached paragraphs: %w", err)
	}
	return a, true, nil
}

// Put stores a parsed article under hash, replacing any earlier entry.
func (c *Cache) Put(ctx context.Context, hash string, a *Article) error {
	paras := a.Paragraphs
	if paras == nil {
		paras = []string{}
	}
	data, err := json.Marshal(paras)
	if err != nil {
		return fmt.Errorf("encoding paragraphs: %w", err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO articles (content_hash, title, paragraphs, parsed_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(content_hash) DO UPDATE SET
			title = excluded.title,
			paragraphs = excluded.paragraphs,
			parsed_at = excluded.parsed_at`,
		hash, a.Title, string(data),
	)
	if err != nil {
		return fmt.Errorf("storing article: %w", err)
	}
	return nil
}

// Len returns the number of cached articles.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cached articles: %w", err)
	}
	return n, nil
}

// Clear removes every cached article.
func (c *Cache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM articles`); err != nil {
		return fmt.Errorf("clearing article cache: %w", err)
	}
	return nil
}
