package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// PurgeByCount deletes the oldest articles beyond retain, keeping the
// retain most recently updated rows. Starred and published articles are
// never purged, so retain is not an exact upper bound on the table size.
// Returns the number of deleted rows.
func (s *Store) PurgeByCount(ctx context.Context, retain int64) (int64, error) {
	var deleted int64
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		// OFFSET is exactly the retain count: everything after position
		// retain in newest-first order goes away.
		res, err := tx.ExecContext(ctx, `
			DELETE FROM articles WHERE id IN (
				SELECT id FROM articles
				WHERE isStarred = 0 AND isPublished = 0
				ORDER BY updateDate DESC LIMIT -1 OFFSET ?)`, retain)
		if err != nil {
			return err
		}
		deleted, _ = res.RowsAffected()
		return s.purgeLabelOrphansTx(ctx, tx)
	})
	return deleted, err
}

// PurgeOrphans deletes articles whose feed no longer exists, plus label
// associations pointing at a missing article or a missing label feed.
func (s *Store) PurgeOrphans(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			"DELETE FROM articles WHERE feedId NOT IN (SELECT id FROM feeds)")
		if err != nil {
			return err
		}
		return s.purgeLabelOrphansTx(ctx, tx)
	})
}

func (s *Store) purgeLabelOrphansTx(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx,
		"DELETE FROM articles2labels WHERE articleId NOT IN (SELECT id FROM articles)")
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		"DELETE FROM articles2labels WHERE labelId NOT IN (SELECT id FROM feeds)")
	return err
}
