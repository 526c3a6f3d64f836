package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"ttrss_sync/internal/domain"
)

// RecomputeCounters rebuilds every cached unread counter from the article
// rows: per-feed counts, rollups into real categories and the four virtual
// category counts. The whole pass is one transaction so readers never see
// the intermediate zeroed state.
func (s *Store) RecomputeCounters(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		return s.recomputeCountersTx(ctx, tx)
	})
}

func (s *Store) recomputeCountersTx(ctx context.Context, tx *sqlx.Tx) error {
	if _, err := tx.ExecContext(ctx, "UPDATE feeds SET unread = 0"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "UPDATE categories SET unread = 0"); err != nil {
		return err
	}

	type feedCount struct {
		FeedID int64 `db:"feedId"`
		Count  int64 `db:"cnt"`
	}
	var perFeed []feedCount
	err := tx.SelectContext(ctx, &perFeed,
		"SELECT feedId, COUNT(*) AS cnt FROM articles WHERE isUnread > 0 GROUP BY feedId")
	if err != nil {
		return err
	}

	var total int64
	for _, fc := range perFeed {
		total += fc.Count
		if _, err := tx.ExecContext(ctx, "UPDATE feeds SET unread = ? WHERE id = ?", fc.Count, fc.FeedID); err != nil {
			return err
		}
	}

	// Roll feed counts up into their owning real categories.
	_, err = tx.ExecContext(ctx, `
		UPDATE categories SET unread =
			(SELECT COALESCE(SUM(unread), 0) FROM feeds WHERE feeds.categoryId = categories.id)
		WHERE id >= 0`)
	if err != nil {
		return err
	}

	for _, vc := range []struct {
		id    int64
		where string
		args  []any
	}{
		{domain.VCatAll, "", nil},
		{domain.VCatFresh, " AND updateDate > ?", []any{time.Now().Add(-s.freshWindow).UnixMilli()}},
		{domain.VCatPublished, " AND isPublished > 0", nil},
		{domain.VCatStarred, " AND isStarred > 0", nil},
	} {
		var count int64
		if vc.id == domain.VCatAll {
			count = total
		} else {
			err := tx.GetContext(ctx, &count,
				"SELECT COUNT(*) FROM articles WHERE isUnread > 0"+vc.where, vc.args...)
			if err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, "UPDATE categories SET unread = ? WHERE id = ?", count, vc.id); err != nil {
			return err
		}
	}
	return nil
}

// ApplyCounters writes server-reported counter values to the cached unread
// columns. These are hints for display; UnreadCount stays authoritative,
// which is what lets the orchestrator detect a counters-only drift.
func (s *Store) ApplyCounters(ctx context.Context, counters []domain.CounterUpdate) error {
	if len(counters) == 0 {
		return nil
	}
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, c := range counters {
			table := "feeds"
			if c.IsCategory {
				table = "categories"
			}
			if _, err := tx.ExecContext(ctx, "UPDATE "+table+" SET unread = ? WHERE id = ?", c.Count, c.ID); err != nil {
				return err
			}
		}
		return nil
	})
}
