package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ttrss_sync/internal/domain"
)

// The marked table holds state changes applied locally while the server
// was unreachable. Rows exist only until reconciliation confirms the push;
// a row whose every field is cleared is deleted.

func markColumn(field domain.MarkField) (string, error) {
	switch field {
	case domain.MarkRead, domain.MarkStar, domain.MarkPublish, domain.MarkNote:
		return string(field), nil
	default:
		return "", fmt.Errorf("unknown mark field %q", field)
	}
}

// RecordPending stores an unsynchronized flag value for the given
// articles. Update-then-insert: an existing row is updated and the insert
// ignored, otherwise the insert creates the row.
func (s *Store) RecordPending(ctx context.Context, ids []int64, field domain.MarkField, state int64) error {
	if len(ids) == 0 {
		return nil
	}
	column, err := markColumn(field)
	if err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		update := fmt.Sprintf("UPDATE marked SET %s = ? WHERE id = ? AND type = ?", column)
		insert := fmt.Sprintf("INSERT OR IGNORE INTO marked (id, type, %s) VALUES (?, ?, ?)", column)
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, update, state, id, domain.MarkTypeArticle); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, insert, id, domain.MarkTypeArticle, state); err != nil {
				return err
			}
		}
		return nil
	})
}

// RecordPendingNote stores an unsynchronized article note. Empty notes are
// not recorded.
func (s *Store) RecordPendingNote(ctx context.Context, id int64, note string) error {
	if note == "" {
		return nil
	}
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"UPDATE marked SET note = ? WHERE id = ? AND type = ?", note, id, domain.MarkTypeArticle); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO marked (id, type, note) VALUES (?, ?, ?)", id, domain.MarkTypeArticle, note)
		return err
	})
}

// RecordPendingScopeRead remembers that a whole category or feed was
// marked read offline, so the scope-level call can be replayed.
func (s *Store) RecordPendingScopeRead(ctx context.Context, scopeID int64, scopeType int) error {
	if scopeType != domain.MarkTypeCategory && scopeType != domain.MarkTypeFeed {
		return fmt.Errorf("invalid scope type %d", scopeType)
	}
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"UPDATE marked SET isUnread = 0 WHERE id = ? AND type = ?", scopeID, scopeType); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO marked (id, type, isUnread) VALUES (?, ?, 0)", scopeID, scopeType)
		return err
	})
}

// Pending returns the article ids with the given flag pending in the given
// state.
func (s *Store) Pending(ctx context.Context, field domain.MarkField, state int64) ([]int64, error) {
	column, err := markColumn(field)
	if err != nil {
		return nil, err
	}
	db, ok := s.handle()
	if !ok {
		return nil, nil
	}

	var ids []int64
	err = db.SelectContext(ctx, &ids,
		fmt.Sprintf("SELECT id FROM marked WHERE %s = ? AND type = ?", column),
		state, domain.MarkTypeArticle)
	return ids, err
}

// PendingNotes returns the non-empty notes awaiting push, keyed by article
// id.
func (s *Store) PendingNotes(ctx context.Context) (map[int64]string, error) {
	db, ok := s.handle()
	if !ok {
		return nil, nil
	}

	rows, err := db.QueryxContext(ctx,
		"SELECT id, note FROM marked WHERE note IS NOT NULL AND note != '' AND type = ?",
		domain.MarkTypeArticle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make(map[int64]string)
	for rows.Next() {
		var (
			id   int64
			note string
		)
		if err := rows.Scan(&id, &note); err != nil {
			return nil, err
		}
		notes[id] = note
	}
	return notes, rows.Err()
}

// PendingScopes returns the category/feed scopes with an offline mark-read
// awaiting replay.
func (s *Store) PendingScopes(ctx context.Context) ([]domain.PendingMark, error) {
	db, ok := s.handle()
	if !ok {
		return nil, nil
	}

	rows, err := db.QueryxContext(ctx,
		"SELECT id, type FROM marked WHERE type != ?", domain.MarkTypeArticle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scopes []domain.PendingMark
	for rows.Next() {
		var m domain.PendingMark
		if err := rows.Scan(&m.ID, &m.Type); err != nil {
			return nil, err
		}
		scopes = append(scopes, m)
	}
	return scopes, rows.Err()
}

// ClearPending removes the given flag from the pending rows and deletes
// rows that have nothing left to sync.
func (s *Store) ClearPending(ctx context.Context, ids []int64, field domain.MarkField) error {
	if len(ids) == 0 {
		return nil
	}
	column, err := markColumn(field)
	if err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, chunk := range chunkIDs(ids, maxFlagChunk) {
			query, args, err := sqlx.In(
				fmt.Sprintf("UPDATE marked SET %s = NULL WHERE id IN (?) AND type = ?", column),
				chunk, domain.MarkTypeArticle)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
				return err
			}
		}
		return deleteEmptyMarksTx(ctx, tx)
	})
}

// ClearPendingScope removes a replayed scope-level mark.
func (s *Store) ClearPendingScope(ctx context.Context, scopeID int64, scopeType int) error {
	db, ok := s.handle()
	if !ok {
		return nil
	}
	_, err := db.ExecContext(ctx,
		"DELETE FROM marked WHERE id = ? AND type = ?", scopeID, scopeType)
	return err
}

func deleteEmptyMarksTx(ctx context.Context, tx *sqlx.Tx) error {
	_, err := tx.ExecContext(ctx, `
		DELETE FROM marked
		WHERE isUnread IS NULL AND isStarred IS NULL AND isPublished IS NULL
		  AND (note IS NULL OR note = '')`)
	return err
}
