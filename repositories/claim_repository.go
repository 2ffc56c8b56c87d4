package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Dosada05/league-signups/models"
	"github.com/google/uuid"
)

type ClaimEventRepository interface {
	Record(ctx context.Context, exec SQLExecutor, event *models.ClaimEvent) error
	ListByGame(ctx context.Context, gameID uuid.UUID) ([]*models.ClaimEvent, error)
}

type sqliteClaimEventRepository struct {
	db *sql.DB
}

func NewSQLiteClaimEventRepository(db *sql.DB) ClaimEventRepository {
	return &sqliteClaimEventRepository{db: db}
}

func (r *sqliteClaimEventRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqliteClaimEventRepository) Record(ctx context.Context, exec SQLExecutor, event *models.ClaimEvent) error {
	executor := r.getExecutor(exec)
	res, err := executor.ExecContext(ctx,
		`INSERT INTO claim_events (game_id, role, participant, action) VALUES (?, ?, ?, ?)`,
		event.GameID.String(), string(event.Role), event.Participant, string(event.Action),
	)
	if err != nil {
		return fmt.Errorf("failed to record %s event for game %s: %w", event.Action, event.GameID, err)
	}
	if event.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read claim event id: %w", err)
	}
	return nil
}

// ListByGame returns the audit log of one game in commit order, oldest first.
// Replaying it as-is reproduces the game's roster state.
func (r *sqliteClaimEventRepository) ListByGame(ctx context.Context, gameID uuid.UUID) ([]*models.ClaimEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, game_id, role, participant, action, created_at
		FROM claim_events
		WHERE game_id = ?
		ORDER BY id`, gameID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list claim events for game %s: %w", gameID, err)
	}
	defer rows.Close()

	events := make([]*models.ClaimEvent, 0)
	for rows.Next() {
		var gameIDText, roleText, actionText string
		var createdAt time.Time
		event := &models.ClaimEvent{}
		if err := rows.Scan(&event.ID, &gameIDText, &roleText, &event.Participant, &actionText, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan claim event: %w", err)
		}
		if event.GameID, err = uuid.Parse(gameIDText); err != nil {
			return nil, fmt.Errorf("stored game id %q is malformed: %w", gameIDText, err)
		}
		if event.Role, err = models.ParseRole(roleText); err != nil {
			return nil, fmt.Errorf("stored claim event %d: %w", event.ID, err)
		}
		event.Action = models.ClaimAction(actionText)
		event.CreatedAt = createdAt
		events = append(events, event)
	}
	return events, rows.Err()
}
