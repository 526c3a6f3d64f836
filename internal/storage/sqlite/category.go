package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ttrss_sync/internal/domain"
)

type categoryRow struct {
	ID     int64  `db:"id"`
	Title  string `db:"title"`
	Unread int64  `db:"unread"`
}

func (r categoryRow) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Title: r.Title, Unread: r.Unread}
}

// UpsertCategories replaces-or-inserts the given categories in one
// transaction.
func (s *Store) UpsertCategories(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, c := range categories {
			_, err := tx.ExecContext(ctx,
				"REPLACE INTO categories (id, title, unread) VALUES (?, ?, ?)",
				c.ID, c.Title, c.Unread,
			)
			if err != nil {
				return fmt.Errorf("upsert category %d: %w", c.ID, err)
			}
		}
		return nil
	})
}

// DeleteCategories removes stored categories ahead of a wholesale
// re-insert. Virtual categories (id <= 0) are kept unless withVirtual is
// set; their rows are maintained locally, not by the server.
func (s *Store) DeleteCategories(ctx context.Context, withVirtual bool) error {
	db, ok := s.handle()
	if !ok {
		return nil
	}
	query := "DELETE FROM categories WHERE id > 0"
	if withVirtual {
		query = "DELETE FROM categories"
	}
	_, err := db.ExecContext(ctx, query)
	return err
}

// Category returns the category with the given id, or nil when unknown.
func (s *Store) Category(ctx context.Context, id int64) (*domain.Category, error) {
	db, ok := s.handle()
	if !ok {
		return nil, nil
	}

	var row categoryRow
	err := db.GetContext(ctx, &row, "SELECT id, title, unread FROM categories WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := row.toDomain()
	return &c, nil
}

// Categories returns the real (server-defined) categories sorted by title.
func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.listCategories(ctx, "SELECT id, title, unread FROM categories WHERE id >= 0 ORDER BY title ASC")
}

// VirtualCategories returns the synthetic categories (All, Fresh,
// Published, Starred, Uncategorized) ordered by id.
func (s *Store) VirtualCategories(ctx context.Context) ([]domain.Category, error) {
	return s.listCategories(ctx, "SELECT id, title, unread FROM categories WHERE id < 1 ORDER BY id ASC")
}

func (s *Store) listCategories(ctx context.Context, query string) ([]domain.Category, error) {
	db, ok := s.handle()
	if !ok {
		return nil, nil
	}

	var rows []categoryRow
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, r.toDomain())
	}
	return categories, nil
}
