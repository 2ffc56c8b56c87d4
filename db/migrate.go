package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Схема создаётся идемпотентно: процесс перезапускается поверх существующего
// файла, повторный CREATE TABLE не должен его ломать.
const schema = `
CREATE TABLE IF NOT EXISTS signups (
	id   TEXT PRIMARY KEY,
	date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS opponents (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS games (
	id          TEXT PRIMARY KEY,
	signup_id   TEXT NOT NULL,
	time        TEXT NOT NULL,
	opponent_id TEXT NOT NULL,
	UNIQUE (signup_id, time)
);

CREATE TABLE IF NOT EXISTS claim_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id     TEXT NOT NULL,
	role        TEXT NOT NULL,
	participant TEXT NOT NULL,
	action      TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_games_signup_id ON games (signup_id);
CREATE INDEX IF NOT EXISTS idx_claim_events_game_id ON claim_events (game_id);
`

// Migrate creates the schema. Safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
