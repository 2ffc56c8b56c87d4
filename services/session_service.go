package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/league-signups/models"
	"github.com/google/uuid"
)

// IntakeSession is one organizer's pending modal: opened when the
// create-signup command fires, waiting for the three fields to come back.
type IntakeSession struct {
	ID        uuid.UUID `json:"id"`
	OpenedAt  time.Time `json:"opened_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionService interface {
	Open() *IntakeSession
	// Submit resolves a pending session with the organizer's input. The
	// session stays open on a validation error so the organizer can fix the
	// fields within the timeout; it is consumed on success.
	Submit(ctx context.Context, sessionID uuid.UUID, dateText, opponentsText, timesText string) (*models.Signup, error)
	// SweepExpired drops abandoned sessions and reports how many were removed.
	SweepExpired() int
}

type sessionService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*IntakeSession
	ttl      time.Duration
	signups  SignupService
	logger   *slog.Logger
	now      func() time.Time
}

func NewSessionService(signups SignupService, ttl time.Duration, logger *slog.Logger) SessionService {
	return &sessionService{
		sessions: make(map[uuid.UUID]*IntakeSession),
		ttl:      ttl,
		signups:  signups,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *sessionService) Open() *IntakeSession {
	now := s.now()
	session := &IntakeSession{
		ID:        uuid.New(),
		OpenedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info("intake session opened", slog.String("session_id", session.ID.String()))
	return session
}

func (s *sessionService) take(sessionID uuid.UUID) (*IntakeSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.now().After(session.ExpiresAt) {
		delete(s.sessions, sessionID)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionService) Submit(ctx context.Context, sessionID uuid.UUID, dateText, opponentsText, timesText string) (*models.Signup, error) {
	if _, err := s.take(sessionID); err != nil {
		return nil, err
	}

	signup, err := s.signups.CreateFromInput(ctx, dateText, opponentsText, timesText)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return signup, nil
}

func (s *sessionService) SweepExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("expired intake sessions swept", slog.Int("removed", removed))
	}
	return removed
}
