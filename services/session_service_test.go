package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/league-signups/roster"
	"github.com/google/uuid"
)

func newTestSessionService(t *testing.T) (*sessionService, *fakeSignupRepo) {
	t.Helper()
	repo := newFakeSignupRepo()
	signups := NewSignupService(repo, roster.NewCoordinator(), testLogger())
	svc := NewSessionService(signups, 10*time.Minute, testLogger()).(*sessionService)
	return svc, repo
}

func TestSessionSubmitConsumesSession(t *testing.T) {
	svc, repo := newTestSessionService(t)
	ctx := context.Background()

	session := svc.Open()
	signup, err := svc.Submit(ctx, session.ID, "2024-06-01", "Foxes", "18:00")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if _, ok := repo.signups[signup.ID]; !ok {
		t.Error("submit did not persist the signup")
	}

	// Сессия одноразовая: повторная отправка отклоняется.
	if _, err := svc.Submit(ctx, session.ID, "2024-06-01", "Foxes", "19:00"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Submit() got = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionSurvivesValidationError(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session := svc.Open()
	if _, err := svc.Submit(ctx, session.ID, "2024-13-01", "Foxes", "18:00"); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Submit() got = %v, want validation error", err)
	}

	// The organizer fixes the date and retries within the timeout.
	if _, err := svc.Submit(ctx, session.ID, "2024-06-01", "Foxes", "18:00"); err != nil {
		t.Fatalf("retry Submit() error = %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }
	session := svc.Open()

	// 10 минут спустя поток считается заброшенным.
	svc.now = func() time.Time { return now.Add(10*time.Minute + time.Second) }
	if _, err := svc.Submit(ctx, session.ID, "2024-06-01", "Foxes", "18:00"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Submit() after expiry got = %v, want ErrSessionNotFound", err)
	}
}

func TestSweepExpired(t *testing.T) {
	svc, _ := newTestSessionService(t)

	now := time.Now()
	svc.now = func() time.Time { return now }
	expired := svc.Open()
	svc.now = func() time.Time { return now.Add(5 * time.Minute) }
	alive := svc.Open()

	svc.now = func() time.Time { return now.Add(12 * time.Minute) }
	if removed := svc.SweepExpired(); removed != 1 {
		t.Errorf("SweepExpired() got = %d, want 1", removed)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if _, ok := svc.sessions[expired.ID]; ok {
		t.Error("expired session not swept")
	}
	if _, ok := svc.sessions[alive.ID]; !ok {
		t.Error("live session swept early")
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	svc, _ := newTestSessionService(t)
	if _, err := svc.Submit(context.Background(), uuid.New(), "2024-06-01", "Foxes", "18:00"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Submit() got = %v, want ErrSessionNotFound", err)
	}
}
