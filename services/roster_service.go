package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/league-signups/live"
	"github.com/Dosada05/league-signups/models"
	"github.com/Dosada05/league-signups/repositories"
	"github.com/Dosada05/league-signups/roster"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type RosterService interface {
	Claim(ctx context.Context, gameID uuid.UUID, role models.Role, participant string) (models.RosterView, error)
	Release(ctx context.Context, gameID uuid.UUID, role models.Role, participant string) (models.RosterView, error)
	View(gameID uuid.UUID) (models.RosterView, error)
	// RebuildRosters replays persisted signups and claim events into the
	// coordinator so roster state survives process restarts.
	RebuildRosters(ctx context.Context) error
}

type rosterService struct {
	coordinator *roster.Coordinator
	signupRepo  repositories.SignupRepository
	claimRepo   repositories.ClaimEventRepository
	hub         *live.Hub
	logger      *slog.Logger
}

func NewRosterService(
	coordinator *roster.Coordinator,
	signupRepo repositories.SignupRepository,
	claimRepo repositories.ClaimEventRepository,
	hub *live.Hub,
	logger *slog.Logger,
) RosterService {
	return &rosterService{
		coordinator: coordinator,
		signupRepo:  signupRepo,
		claimRepo:   claimRepo,
		hub:         hub,
		logger:      logger,
	}
}

func (s *rosterService) Claim(ctx context.Context, gameID uuid.UUID, role models.Role, participant string) (models.RosterView, error) {
	view, err := s.coordinator.Claim(gameID, role, participant)
	if err != nil {
		return models.RosterView{}, err
	}

	event := &models.ClaimEvent{GameID: gameID, Role: role, Participant: participant, Action: models.ClaimActionClaim}
	if err := s.claimRepo.Record(ctx, nil, event); err != nil {
		// Держим память и журнал согласованными: откатываем слот и просим повторить.
		if _, revertErr := s.coordinator.Release(gameID, role, participant); revertErr != nil {
			s.logger.Error("failed to revert claim after storage error", slog.String("game_id", gameID.String()), slog.Any("error", revertErr))
		}
		s.logger.Error("failed to record claim event", slog.String("game_id", gameID.String()), slog.Any("error", err))
		return models.RosterView{}, fmt.Errorf("%w: record claim", ErrStorageUnavailable)
	}

	s.broadcast(view)
	return view, nil
}

func (s *rosterService) Release(ctx context.Context, gameID uuid.UUID, role models.Role, participant string) (models.RosterView, error) {
	view, err := s.coordinator.Release(gameID, role, participant)
	if err != nil {
		return models.RosterView{}, err
	}

	event := &models.ClaimEvent{GameID: gameID, Role: role, Participant: participant, Action: models.ClaimActionRelease}
	if err := s.claimRepo.Record(ctx, nil, event); err != nil {
		if _, revertErr := s.coordinator.Claim(gameID, role, participant); revertErr != nil {
			s.logger.Error("failed to revert release after storage error", slog.String("game_id", gameID.String()), slog.Any("error", revertErr))
		}
		s.logger.Error("failed to record release event", slog.String("game_id", gameID.String()), slog.Any("error", err))
		return models.RosterView{}, fmt.Errorf("%w: record release", ErrStorageUnavailable)
	}

	s.broadcast(view)
	return view, nil
}

func (s *rosterService) View(gameID uuid.UUID) (models.RosterView, error) {
	return s.coordinator.View(gameID)
}

func (s *rosterService) broadcast(view models.RosterView) {
	s.hub.BroadcastToRoom(live.SignupRoom(view.SignupID), live.MessageTypeRosterUpdated, view)
}

func (s *rosterService) RebuildRosters(ctx context.Context) error {
	signups, err := s.signupRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("rebuild rosters: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, signup := range signups {
		signup := signup
		g.Go(func() error {
			for _, game := range signup.Games {
				s.coordinator.InitGame(signup.ID, game.ID)
				events, err := s.claimRepo.ListByGame(gCtx, game.ID)
				if err != nil {
					return err
				}
				for _, event := range events {
					s.replay(event)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("rebuild rosters: %w", err)
	}

	s.logger.Info("rosters rebuilt", slog.Int("signups", len(signups)))
	return nil
}

// replay folds one audit record back into the coordinator. The log only ever
// holds committed transitions, so a failure here means the log and memory
// drifted; it is logged and skipped rather than aborting the whole rebuild.
func (s *rosterService) replay(event *models.ClaimEvent) {
	var err error
	switch event.Action {
	case models.ClaimActionClaim:
		_, err = s.coordinator.Claim(event.GameID, event.Role, event.Participant)
	case models.ClaimActionRelease:
		_, err = s.coordinator.Release(event.GameID, event.Role, event.Participant)
	default:
		err = fmt.Errorf("unknown action %q", event.Action)
	}
	if err != nil {
		s.logger.Warn("skipping unreplayable claim event",
			slog.Int64("event_id", event.ID),
			slog.String("game_id", event.GameID.String()),
			slog.Any("error", err))
	}
}
