package sqlite

import (
	"context"
	"strings"

	"ttrss_sync/internal/domain"
)

// Serialized label cache on the article row: labels joined by "---", each
// one "caption;foreground;background". The format is part of the on-disk
// schema and must not change.
const (
	labelSeparator = "---"
	labelFieldSep  = ";"
)

func serializeLabels(labels []domain.Label) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.Caption+labelFieldSep+l.Foreground+labelFieldSep+l.Background)
	}
	return strings.Join(parts, labelSeparator)
}

func parseLabels(raw string) []domain.Label {
	if raw == "" {
		return nil
	}
	var labels []domain.Label
	for i, part := range strings.Split(raw, labelSeparator) {
		fields := strings.Split(part, labelFieldSep)
		if len(fields) == 0 || fields[0] == "" {
			continue
		}
		l := domain.Label{ID: int64(i + 1), Caption: fields[0], Checked: true}
		if len(fields) > 1 && strings.HasPrefix(fields[1], "#") {
			l.Foreground = fields[1]
		}
		if len(fields) > 2 && strings.HasPrefix(fields[2], "#") {
			l.Background = fields[2]
		}
		labels = append(labels, l)
	}
	return labels
}

func joinAttachments(urls []string) string {
	return strings.Join(urls, ";")
}

func splitAttachments(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ";")
}

// LabelsForArticle returns every known label with its checked state for
// the given article. Labels are feed rows with id < -10; checked means an
// association row exists.
func (s *Store) LabelsForArticle(ctx context.Context, articleID int64) ([]domain.Label, error) {
	db, ok := s.handle()
	if !ok {
		return nil, nil
	}

	const query = `
		SELECT f.id, f.title, 0 AS checked FROM feeds f
			WHERE f.id < -10 AND NOT EXISTS
				(SELECT 1 FROM articles2labels a2l WHERE a2l.labelId = f.id AND a2l.articleId = ?)
		UNION
		SELECT f.id, f.title, 1 AS checked FROM feeds f, articles2labels a2l
			WHERE f.id < -10 AND a2l.labelId = f.id AND a2l.articleId = ?
		ORDER BY title`

	rows, err := db.QueryxContext(ctx, query, articleID, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []domain.Label
	for rows.Next() {
		var (
			l       domain.Label
			checked int64
		)
		if err := rows.Scan(&l.ID, &l.Caption, &checked); err != nil {
			return nil, err
		}
		l.Checked = checked != 0
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// SetArticleLabel assigns or removes a label for the given articles in the
// association table. Non-label ids are ignored.
func (s *Store) SetArticleLabel(ctx context.Context, articleIDs []int64, labelID int64, assign bool) error {
	if !domain.IsLabelID(labelID) || len(articleIDs) == 0 {
		return nil
	}
	db, ok := s.handle()
	if !ok {
		return nil
	}

	for _, articleID := range articleIDs {
		var err error
		if assign {
			_, err = db.ExecContext(ctx,
				"REPLACE INTO articles2labels (articleId, labelId) VALUES (?, ?)", articleID, labelID)
		} else {
			_, err = db.ExecContext(ctx,
				"DELETE FROM articles2labels WHERE articleId = ? AND labelId = ?", articleID, labelID)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
