package store

import "github.com/jmoiron/sqlx"

// schema is portable DDL: it runs unchanged on SQLite and PostgreSQL.
const schema = `
CREATE TABLE IF NOT EXISTS decks (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS words (
	id                  TEXT PRIMARY KEY,
	deck_id             TEXT REFERENCES decks(id) ON DELETE CASCADE,
	term                TEXT NOT NULL,
	meaning             TEXT NOT NULL,
	times_trained       INTEGER NOT NULL DEFAULT 0,
	times_correct       INTEGER NOT NULL DEFAULT 0,
	times_incorrect     INTEGER NOT NULL DEFAULT 0,
	last_trained        TIMESTAMP,
	last_answer_correct BOOLEAN,
	mastery             TEXT NOT NULL DEFAULT 'new',
	easiness            REAL NOT NULL DEFAULT 2.5,
	repetitions         INTEGER NOT NULL DEFAULT 0,
	interval_days       INTEGER NOT NULL DEFAULT 1,
	next_review         TIMESTAMP NOT NULL,
	favorite            BOOLEAN NOT NULL DEFAULT FALSE,
	created_at          TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_words_next_review ON words (next_review);
CREATE INDEX IF NOT EXISTS idx_words_deck ON words (deck_id);
CREATE INDEX IF NOT EXISTS idx_words_last_trained ON words (last_trained);
`

// initSchema creates tables and indexes if they don't exist yet.
func initSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
