package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Dosada05/league-signups/models"
	"github.com/Dosada05/league-signups/repositories"
	"github.com/Dosada05/league-signups/roster"
	"github.com/google/uuid"
)

const summaryHeader = "#Gaming time!"

type SignupService interface {
	// CreateFromInput runs the full intake path: parse the raw fields,
	// assemble the entities, persist them atomically and materialize the
	// empty rosters.
	CreateFromInput(ctx context.Context, dateText, opponentsText, timesText string) (*models.Signup, error)
	GetSignup(ctx context.Context, id uuid.UUID) (*models.Signup, error)
	GetGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error)
	RenderSummary(signup *models.Signup) string
}

type signupService struct {
	signupRepo  repositories.SignupRepository
	coordinator *roster.Coordinator
	logger      *slog.Logger
}

func NewSignupService(
	signupRepo repositories.SignupRepository,
	coordinator *roster.Coordinator,
	logger *slog.Logger,
) SignupService {
	return &signupService{
		signupRepo:  signupRepo,
		coordinator: coordinator,
		logger:      logger,
	}
}

// AssembleSignup turns a validated proposal into a Signup with fresh ids: one
// Opponent and one Game per pair, games in the order the pairs were typed.
func AssembleSignup(proposed *models.ProposedSignup) *models.Signup {
	signup := &models.Signup{
		ID:    uuid.New(),
		Date:  proposed.Date,
		Games: make([]*models.Game, 0, len(proposed.Pairs)),
	}
	for _, pair := range proposed.Pairs {
		opponent := &models.Opponent{ID: uuid.New(), Name: pair.Opponent}
		signup.Games = append(signup.Games, &models.Game{
			ID:         uuid.New(),
			SignupID:   signup.ID,
			Time:       pair.Time,
			OpponentID: opponent.ID,
			Opponent:   opponent,
		})
	}
	return signup
}

func (s *signupService) CreateFromInput(ctx context.Context, dateText, opponentsText, timesText string) (*models.Signup, error) {
	proposed, err := ParseSignupInput(dateText, opponentsText, timesText)
	if err != nil {
		s.logger.Warn("signup input rejected",
			slog.String("date", dateText),
			slog.String("opponents", opponentsText),
			slog.String("times", timesText),
			slog.Any("error", err))
		return nil, err
	}

	signup := AssembleSignup(proposed)
	if err := s.signupRepo.Create(ctx, signup); err != nil {
		s.logger.Error("failed to persist signup", slog.String("signup_id", signup.ID.String()), slog.Any("error", err))
		return nil, fmt.Errorf("%w: insert signup", ErrStorageUnavailable)
	}

	for _, game := range signup.Games {
		s.coordinator.InitGame(signup.ID, game.ID)
	}

	s.logger.Info("signup created",
		slog.String("signup_id", signup.ID.String()),
		slog.String("date", signup.DateText()),
		slog.Int("games", len(signup.Games)))
	return signup, nil
}

func (s *signupService) GetSignup(ctx context.Context, id uuid.UUID) (*models.Signup, error) {
	return s.signupRepo.GetByID(ctx, id)
}

func (s *signupService) GetGame(ctx context.Context, gameID uuid.UUID) (*models.Game, error) {
	return s.signupRepo.GetGameByID(ctx, gameID)
}

// RenderSummary lists the signup's games sorted ascending by kickoff time,
// one "HH:MM :: opponent" line per game. Insertion order breaks ties.
func (s *signupService) RenderSummary(signup *models.Signup) string {
	games := make([]*models.Game, len(signup.Games))
	copy(games, signup.Games)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Time < games[j].Time // zero-padded HH:MM sorts lexicographically
	})

	var b strings.Builder
	b.WriteString(summaryHeader)
	for _, game := range games {
		name := ""
		if game.Opponent != nil {
			name = game.Opponent.Name
		}
		b.WriteString(fmt.Sprintf("\n%s :: %s", game.Time, name))
	}
	b.WriteString("\n")
	return b.String()
}
