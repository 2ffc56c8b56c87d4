package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/league-signups/models"
	"github.com/google/uuid"
)

type SignupRepository interface {
	// Create inserts the signup, its opponents and its games as one
	// transaction. Either every row lands or none do.
	Create(ctx context.Context, signup *models.Signup) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Signup, error)
	GetGameByID(ctx context.Context, gameID uuid.UUID) (*models.Game, error)
	ListAll(ctx context.Context) ([]*models.Signup, error)
}

type sqliteSignupRepository struct {
	db *sql.DB
}

func NewSQLiteSignupRepository(db *sql.DB) SignupRepository {
	return &sqliteSignupRepository{db: db}
}

func (r *sqliteSignupRepository) Create(ctx context.Context, signup *models.Signup) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create signup: failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO signups (id, date) VALUES (?, ?)`,
		signup.ID.String(), signup.DateText(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert signup %s: %w", signup.ID, err)
	}

	for _, game := range signup.Games {
		if game.Opponent == nil {
			err = fmt.Errorf("game %s has no opponent attached", game.ID)
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO opponents (id, name) VALUES (?, ?)`,
			game.Opponent.ID.String(), game.Opponent.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert opponent %q: %w", game.Opponent.Name, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO games (id, signup_id, time, opponent_id) VALUES (?, ?, ?, ?)`,
			game.ID.String(), signup.ID.String(), game.Time, game.OpponentID.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert game at %s: %w", game.Time, err)
		}
	}

	return err
}

func (r *sqliteSignupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Signup, error) {
	signup := &models.Signup{ID: id}

	var dateText string
	err := r.db.QueryRowContext(ctx,
		`SELECT date FROM signups WHERE id = ?`, id.String(),
	).Scan(&dateText)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSignupNotFound
		}
		return nil, fmt.Errorf("failed to scan signup %s: %w", id, err)
	}
	if signup.Date, err = time.Parse(models.DateLayout, dateText); err != nil {
		return nil, fmt.Errorf("stored date %q for signup %s is malformed: %w", dateText, id, err)
	}

	if signup.Games, err = r.listGames(ctx, id); err != nil {
		return nil, err
	}
	return signup, nil
}

func (r *sqliteSignupRepository) GetGameByID(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT g.id, g.signup_id, g.time, g.opponent_id, o.name
		FROM games g
		JOIN opponents o ON o.id = g.opponent_id
		WHERE g.id = ?`, gameID.String())

	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to scan game %s: %w", gameID, err)
	}
	return game, nil
}

func (r *sqliteSignupRepository) ListAll(ctx context.Context) ([]*models.Signup, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, date FROM signups ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	defer rows.Close()

	signups := make([]*models.Signup, 0)
	for rows.Next() {
		var idText, dateText string
		if err := rows.Scan(&idText, &dateText); err != nil {
			return nil, fmt.Errorf("failed to scan signup row: %w", err)
		}
		signup := &models.Signup{}
		if signup.ID, err = uuid.Parse(idText); err != nil {
			return nil, fmt.Errorf("stored signup id %q is malformed: %w", idText, err)
		}
		if signup.Date, err = time.Parse(models.DateLayout, dateText); err != nil {
			return nil, fmt.Errorf("stored date %q for signup %s is malformed: %w", dateText, idText, err)
		}
		signups = append(signups, signup)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, signup := range signups {
		if signup.Games, err = r.listGames(ctx, signup.ID); err != nil {
			return nil, err
		}
	}
	return signups, nil
}

func (r *sqliteSignupRepository) listGames(ctx context.Context, signupID uuid.UUID) ([]*models.Game, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.signup_id, g.time, g.opponent_id, o.name
		FROM games g
		JOIN opponents o ON o.id = g.opponent_id
		WHERE g.signup_id = ?
		ORDER BY g.time`, signupID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list games for signup %s: %w", signupID, err)
	}
	defer rows.Close()

	games := make([]*models.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game row for signup %s: %w", signupID, err)
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row rowScanner) (*models.Game, error) {
	var idText, signupIDText, opponentIDText, opponentName string
	game := &models.Game{}
	if err := row.Scan(&idText, &signupIDText, &game.Time, &opponentIDText, &opponentName); err != nil {
		return nil, err
	}

	var err error
	if game.ID, err = uuid.Parse(idText); err != nil {
		return nil, fmt.Errorf("stored game id %q is malformed: %w", idText, err)
	}
	if game.SignupID, err = uuid.Parse(signupIDText); err != nil {
		return nil, fmt.Errorf("stored signup id %q is malformed: %w", signupIDText, err)
	}
	if game.OpponentID, err = uuid.Parse(opponentIDText); err != nil {
		return nil, fmt.Errorf("stored opponent id %q is malformed: %w", opponentIDText, err)
	}
	game.Opponent = &models.Opponent{ID: game.OpponentID, Name: opponentName}
	return game, nil
}
