package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ttrss_sync/internal/domain"
)

type feedRow struct {
	ID         int64  `db:"id"`
	CategoryID int64  `db:"categoryId"`
	Title      string `db:"title"`
	URL        string `db:"url"`
	Unread     int64  `db:"unread"`
}

func (r feedRow) toDomain() domain.Feed {
	return domain.Feed{ID: r.ID, CategoryID: r.CategoryID, Title: r.Title, URL: r.URL, Unread: r.Unread}
}

// UpsertFeeds replaces-or-inserts the given feeds (including label
// pseudo-feeds) in one transaction.
func (s *Store) UpsertFeeds(ctx context.Context, feeds []domain.Feed) error {
	if len(feeds) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, f := range feeds {
			_, err := tx.ExecContext(ctx,
				"REPLACE INTO feeds (id, categoryId, title, url, unread) VALUES (?, ?, ?, ?, ?)",
				f.ID, f.CategoryID, f.Title, f.URL, f.Unread,
			)
			if err != nil {
				return fmt.Errorf("upsert feed %d: %w", f.ID, err)
			}
		}
		return nil
	})
}

// DeleteFeeds removes all feed rows ahead of a wholesale re-insert.
func (s *Store) DeleteFeeds(ctx context.Context) error {
	db, ok := s.handle()
	if !ok {
		return nil
	}
	_, err := db.ExecContext(ctx, "DELETE FROM feeds")
	return err
}

// Feed returns the feed with the given id, or nil when unknown.
func (s *Store) Feed(ctx context.Context, id int64) (*domain.Feed, error) {
	db, ok := s.handle()
	if !ok {
		return nil, nil
	}

	var row feedRow
	err := db.GetContext(ctx, &row, "SELECT id, categoryId, title, url, unread FROM feeds WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f := row.toDomain()
	return &f, nil
}

// ListFeeds returns feeds filtered by categoryId, sorted case-insensitively
// by title. The categoryId carries the legacy five-way meaning:
//
//	>= 0  feeds of that category (0 = uncategorized)
//	 -1   the special set: uncategorized, labels node, all-feeds node
//	 -2   label pseudo-feeds only (id < -10)
//	 -3   all feeds belonging to a real category
//	 -4   every stored feed, labels and virtual ones included
func (s *Store) ListFeeds(ctx context.Context, categoryID int64) ([]domain.Feed, error) {
	db, ok := s.handle()
	if !ok {
		return nil, nil
	}

	query := "SELECT id, categoryId, title, url, unread FROM feeds"
	var args []any
	switch {
	case categoryID >= 0:
		query += " WHERE categoryId = ?"
		args = append(args, categoryID)
	case categoryID == -1:
		query += " WHERE id IN (0, -2, -3)"
	case categoryID == -2:
		query += " WHERE id < -10"
	case categoryID == -3:
		query += " WHERE categoryId >= 0"
	case categoryID == -4:
		// no filter
	default:
		return nil, fmt.Errorf("unsupported category filter %d", categoryID)
	}
	query += " ORDER BY UPPER(title) ASC"

	var rows []feedRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	feeds := make([]domain.Feed, 0, len(rows))
	for _, r := range rows {
		feeds = append(feeds, r.toDomain())
	}
	return feeds, nil
}
