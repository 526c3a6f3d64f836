package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaVersion continues the version line of the original database so an
// existing file migrates instead of being wiped.
const schemaVersion = 52

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		title TEXT,
		unread INTEGER DEFAULT 0)`,
	`CREATE TABLE IF NOT EXISTS feeds (
		id INTEGER PRIMARY KEY,
		categoryId INTEGER,
		title TEXT,
		url TEXT,
		unread INTEGER DEFAULT 0)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id INTEGER PRIMARY KEY,
		feedId INTEGER,
		title TEXT,
		isUnread INTEGER,
		articleUrl TEXT,
		articleCommentUrl TEXT,
		updateDate INTEGER,
		content TEXT,
		attachments TEXT,
		isStarred INTEGER,
		isPublished INTEGER,
		cachedImages INTEGER DEFAULT 0,
		articleLabels TEXT)`,
	`CREATE TABLE IF NOT EXISTS articles2labels (
		articleId INTEGER,
		labelId INTEGER,
		PRIMARY KEY(articleId, labelId))`,
	`CREATE TABLE IF NOT EXISTS marked (
		id INTEGER,
		type INTEGER,
		isUnread INTEGER,
		isStarred INTEGER,
		isPublished INTEGER,
		note TEXT,
		PRIMARY KEY(id, type))`,
}

// migrate brings the schema to schemaVersion. Recent versions get
// incremental, additive migrations; anything older than the incremental
// window is dropped and recreated. Starred/published rows survive every
// incremental path.
func (s *Store) migrate(db *sqlx.DB) error {
	var version int
	if err := db.Get(&version, "PRAGMA user_version"); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	switch {
	case version == 0:
		// Fresh database.
		for _, stmt := range createStatements {
			if _, err := db.Exec(stmt); err != nil {
				return err
			}
		}

	case version == schemaVersion:
		return nil

	case version >= 47 && version < schemaVersion:
		if err := s.upgradeFrom(db, version); err != nil {
			return err
		}

	default:
		// No incremental path. Drop everything and start over.
		s.logger.Warn("no migration path, recreating schema", "from", version)
		for _, table := range []string{"categories", "feeds", "articles", "articles2labels", "marked"} {
			if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
				return err
			}
		}
		for _, stmt := range createStatements {
			if _, err := db.Exec(stmt); err != nil {
				return err
			}
		}
	}

	_, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

func (s *Store) upgradeFrom(db *sqlx.DB, version int) error {
	exec := func(stmts ...string) error {
		for _, stmt := range stmts {
			s.logger.Info("schema upgrade", "from", version, "sql", stmt)
			if _, err := db.Exec(stmt); err != nil {
				return err
			}
		}
		return nil
	}

	if version < 50 {
		if err := exec("UPDATE articles SET cachedImages = 0 WHERE cachedImages IS NULL"); err != nil {
			return err
		}
	}
	if version < 51 {
		// marked gained the note column; the table holds only transient
		// rows so recreating it loses nothing durable.
		if err := exec(
			"DROP TABLE IF EXISTS marked",
			`CREATE TABLE marked (
				id INTEGER,
				type INTEGER,
				isUnread INTEGER,
				isStarred INTEGER,
				isPublished INTEGER,
				note TEXT,
				PRIMARY KEY(id, type))`,
		); err != nil {
			return err
		}
	}
	if version < 52 {
		if err := exec("ALTER TABLE articles ADD COLUMN articleLabels TEXT"); err != nil {
			return err
		}
	}
	return nil
}
