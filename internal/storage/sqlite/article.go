package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ttrss_sync/internal/domain"
)

type articleRow struct {
	ID           int64          `db:"id"`
	FeedID       int64          `db:"feedId"`
	Title        string         `db:"title"`
	IsUnread     int64          `db:"isUnread"`
	URL          string         `db:"articleUrl"`
	CommentURL   string         `db:"articleCommentUrl"`
	UpdateDate   int64          `db:"updateDate"`
	Content      string         `db:"content"`
	Attachments  string         `db:"attachments"`
	IsStarred    int64          `db:"isStarred"`
	IsPublished  int64          `db:"isPublished"`
	CachedImages int64          `db:"cachedImages"`
	Labels       sql.NullString `db:"articleLabels"`
}

func (r articleRow) toDomain() domain.Article {
	return domain.Article{
		ID:           r.ID,
		FeedID:       r.FeedID,
		Title:        r.Title,
		IsUnread:     r.IsUnread != 0,
		URL:          r.URL,
		CommentURL:   r.CommentURL,
		Updated:      time.UnixMilli(r.UpdateDate),
		Content:      r.Content,
		Attachments:  splitAttachments(r.Attachments),
		IsStarred:    r.IsStarred != 0,
		IsPublished:  r.IsPublished != 0,
		CachedImages: r.CachedImages != 0,
		Labels:       parseLabels(r.Labels.String),
	}
}

// The cachedImages column is carried forward from the previous row inside
// the statement itself. A read-then-write would race against concurrent
// readers of the old row.
const upsertArticleSQL = `
	INSERT OR REPLACE INTO articles
		(id, feedId, title, isUnread, articleUrl, articleCommentUrl,
		 updateDate, content, attachments, isStarred, isPublished,
		 cachedImages, articleLabels)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
		COALESCE((SELECT cachedImages FROM articles WHERE id = ?), 0), ?)`

// UpsertArticles replaces-or-inserts the given articles in one
// transaction. Label associations and the serialized label cache on the
// article row are written in the same transaction; there is exactly one
// writer path for all label representations.
func (s *Store) UpsertArticles(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, a := range articles {
			_, err := tx.ExecContext(ctx, upsertArticleSQL,
				a.ID, a.FeedID, a.Title, boolToInt(a.IsUnread), a.URL, a.CommentURL,
				a.Updated.UnixMilli(), a.Content, joinAttachments(a.Attachments),
				boolToInt(a.IsStarred), boolToInt(a.IsPublished),
				a.ID, serializeLabels(a.Labels),
			)
			if err != nil {
				return fmt.Errorf("upsert article %d: %w", a.ID, err)
			}
			for _, l := range a.Labels {
				if !domain.IsLabelID(l.ID) {
					continue
				}
				_, err := tx.ExecContext(ctx,
					"REPLACE INTO articles2labels (articleId, labelId) VALUES (?, ?)",
					a.ID, l.ID,
				)
				if err != nil {
					return fmt.Errorf("link label %d to article %d: %w", l.ID, a.ID, err)
				}
			}
		}
		return nil
	})
}

// Article returns the article with the given id, or nil when unknown.
func (s *Store) Article(ctx context.Context, id int64) (*domain.Article, error) {
	db, ok := s.handle()
	if !ok {
		return nil, nil
	}

	var row articleRow
	err := db.GetContext(ctx, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a := row.toDomain()
	return &a, nil
}

// CountArticles returns the total number of cached articles.
func (s *Store) CountArticles(ctx context.Context) (int64, error) {
	db, ok := s.handle()
	if !ok {
		return 0, nil
	}
	var n int64
	err := db.GetContext(ctx, &n, "SELECT COUNT(*) FROM articles")
	return n, err
}

// UnreadCount computes the live unread count for a feed, category or
// virtual category by filtering article rows. The cached unread columns
// are never consulted; this is the authoritative counting path.
func (s *Store) UnreadCount(ctx context.Context, id int64, isCategory bool) (int64, error) {
	db, ok := s.handle()
	if !ok {
		return 0, nil
	}

	query := "SELECT COUNT(*) FROM articles WHERE isUnread > 0"
	var args []any

	switch {
	case isCategory && id >= 0:
		query += " AND feedId IN (SELECT id FROM feeds WHERE categoryId = ?)"
		args = append(args, id)
	case id == domain.VCatAll:
		// unfiltered
	case id == domain.VCatFresh:
		query += " AND updateDate > ?"
		args = append(args, time.Now().Add(-s.freshWindow).UnixMilli())
	case id == domain.VCatPublished:
		query += " AND isPublished > 0"
	case id == domain.VCatStarred:
		query += " AND isStarred > 0"
	case domain.IsLabelID(id):
		query += " AND id IN (SELECT articleId FROM articles2labels WHERE labelId = ?)"
		args = append(args, id)
	default:
		query += " AND feedId = ?"
		args = append(args, id)
	}

	var n int64
	err := db.GetContext(ctx, &n, query, args...)
	return n, err
}

// MarkRead flips isUnread for every unread article in the given scope and
// returns the ids that changed. The select, the update and the counter
// recompute share one transaction. With all set the scope is ignored and
// everything is marked.
func (s *Store) MarkRead(ctx context.Context, id int64, isCategory bool, all bool) ([]int64, error) {
	var marked []int64
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		where := "isUnread > 0"
		var args []any
		if !all {
			if isCategory || id < 0 {
				where += " AND feedId IN (SELECT id FROM feeds WHERE categoryId = ?)"
			} else {
				where += " AND feedId = ?"
			}
			args = append(args, id)
		}

		if err := tx.SelectContext(ctx, &marked, "SELECT id FROM articles WHERE "+where, args...); err != nil {
			return err
		}
		if len(marked) == 0 {
			return nil
		}
		if _, err := tx.ExecContext(ctx, "UPDATE articles SET isUnread = 0 WHERE "+where, args...); err != nil {
			return err
		}
		return s.recomputeCountersTx(ctx, tx)
	})
	if err != nil {
		return nil, err
	}
	return marked, nil
}

// SetFlags bulk-updates one flag column for the given article ids, in
// chunks of at most 100 ids per statement, and recomputes counters in the
// same transaction.
func (s *Store) SetFlags(ctx context.Context, ids []int64, field domain.MarkField, state int64) error {
	if len(ids) == 0 {
		return nil
	}
	column, err := flagColumn(field)
	if err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, chunk := range chunkIDs(ids, maxFlagChunk) {
			query, args, err := sqlx.In(
				fmt.Sprintf("UPDATE articles SET %s = ? WHERE id IN (?)", column), state, chunk)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return err
			}
		}
		return s.recomputeCountersTx(ctx, tx)
	})
}

// SetCachedImages records that an article's images were cached. Applied
// only once; an already-set flag is left alone.
func (s *Store) SetCachedImages(ctx context.Context, id int64) error {
	db, ok := s.handle()
	if !ok {
		return nil
	}
	_, err := db.ExecContext(ctx, "UPDATE articles SET cachedImages = 1 WHERE cachedImages = 0 AND id = ?", id)
	return err
}

// SetAllCachedImages marks every not-yet-flagged article as image-cached.
func (s *Store) SetAllCachedImages(ctx context.Context) error {
	db, ok := s.handle()
	if !ok {
		return nil
	}
	_, err := db.ExecContext(ctx, "UPDATE articles SET cachedImages = 1 WHERE cachedImages = 0")
	return err
}

// flagColumn maps a mark field to its articles column, rejecting fields
// that have no column (notes live only in the marked table).
func flagColumn(field domain.MarkField) (string, error) {
	switch field {
	case domain.MarkRead, domain.MarkStar, domain.MarkPublish:
		return string(field), nil
	default:
		return "", fmt.Errorf("field %q has no article column", field)
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
