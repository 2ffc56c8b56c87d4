package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/league-signups/live"
	"github.com/Dosada05/league-signups/models"
	"github.com/Dosada05/league-signups/repositories"
	"github.com/Dosada05/league-signups/roster"
	"github.com/Dosada05/league-signups/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// stubClaimRepo records events in memory; the handler tests only care that
// the durable write is attempted, not how it is stored.
type stubClaimRepo struct {
	events []*models.ClaimEvent
}

func (s *stubClaimRepo) Record(ctx context.Context, exec repositories.SQLExecutor, event *models.ClaimEvent) error {
	event.ID = int64(len(s.events) + 1)
	s.events = append(s.events, event)
	return nil
}

func (s *stubClaimRepo) ListByGame(ctx context.Context, gameID uuid.UUID) ([]*models.ClaimEvent, error) {
	return nil, nil
}

func setupRosterRouter(t *testing.T) (*chi.Mux, uuid.UUID, *stubClaimRepo) {
	t.Helper()

	coordinator := roster.NewCoordinator()
	gameID := uuid.New()
	coordinator.InitGame(uuid.New(), gameID)

	claimRepo := &stubClaimRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rosterService := services.NewRosterService(coordinator, nil, claimRepo, live.NewHub(), logger)

	h := NewRosterHandler(rosterService)
	router := chi.NewRouter()
	router.Post("/interactions", h.ComponentEventHandler)
	router.Route("/games/{gameID}/roster", func(r chi.Router) {
		r.Get("/", h.GameRosterHandler)
		r.Post("/{role}/claim", h.ClaimRoleHandler)
		r.Post("/{role}/release", h.ReleaseRoleHandler)
	})
	return router, gameID, claimRepo
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestComponentEventClaimFlow(t *testing.T) {
	router, gameID, claimRepo := setupRosterRouter(t)

	customID := encodeControlID(gameID, models.RoleTop, models.ClaimActionClaim)
	body := fmt.Sprintf(`{"custom_id": %q, "participant": "alice"}`, customID)

	rr := postJSON(t, router, "/interactions", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status got = %d, want 200; body: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Roster models.RosterView `json:"roster"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response not parseable: %v", err)
	}
	found := false
	for _, slot := range resp.Roster.Slots {
		if slot.Role == models.RoleTop && slot.Participant == "alice" {
			found = true
		}
	}
	if !found {
		t.Errorf("claimed slot missing from view: %+v", resp.Roster)
	}

	if len(claimRepo.events) != 1 || claimRepo.events[0].Action != models.ClaimActionClaim {
		t.Errorf("claim event not recorded: %+v", claimRepo.events)
	}

	// Second participant hits the occupied slot.
	rr = postJSON(t, router, "/interactions", fmt.Sprintf(`{"custom_id": %q, "participant": "bob"}`, customID))
	if rr.Code != http.StatusConflict {
		t.Errorf("conflicting claim status got = %d, want 409", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "alice") {
		t.Errorf("conflict body does not name the holder: %s", rr.Body.String())
	}
}

func TestComponentEventBadControlID(t *testing.T) {
	router, gameID, _ := setupRosterRouter(t)

	cases := []string{
		`{"custom_id": "nonsense", "participant": "alice"}`,
		fmt.Sprintf(`{"custom_id": "roster:%s:goalkeeper:claim", "participant": "alice"}`, gameID),
		fmt.Sprintf(`{"custom_id": "roster:%s:top:explode", "participant": "alice"}`, gameID),
		`{"custom_id": "roster:not-a-uuid:top:claim", "participant": "alice"}`,
	}
	for _, body := range cases {
		rr := postJSON(t, router, "/interactions", body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: status got = %d, want 400", body, rr.Code)
		}
	}

	rr := postJSON(t, router, "/interactions",
		fmt.Sprintf(`{"custom_id": %q, "participant": ""}`, encodeControlID(gameID, models.RoleTop, models.ClaimActionClaim)))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing participant status got = %d, want 422", rr.Code)
	}
}

func TestRestClaimReleaseAndView(t *testing.T) {
	router, gameID, _ := setupRosterRouter(t)

	rr := postJSON(t, router, fmt.Sprintf("/games/%s/roster/mid/claim", gameID), `{"participant": "alice"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("claim status got = %d; body: %s", rr.Code, rr.Body.String())
	}

	// Release by someone else is a conflict, slot keeps its holder.
	rr = postJSON(t, router, fmt.Sprintf("/games/%s/roster/mid/release", gameID), `{"participant": "bob"}`)
	if rr.Code != http.StatusConflict {
		t.Errorf("foreign release status got = %d, want 409", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/games/%s/roster", gameID), nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("view status got = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "alice") {
		t.Errorf("view does not show the holder: %s", rr.Body.String())
	}

	rr = postJSON(t, router, fmt.Sprintf("/games/%s/roster/mid/release", gameID), `{"participant": "alice"}`)
	if rr.Code != http.StatusOK {
		t.Errorf("release status got = %d; body: %s", rr.Code, rr.Body.String())
	}
}

func TestRosterUnknownGame(t *testing.T) {
	router, _, _ := setupRosterRouter(t)

	rr := postJSON(t, router, fmt.Sprintf("/games/%s/roster/top/claim", uuid.New()), `{"participant": "alice"}`)
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown game status got = %d, want 404", rr.Code)
	}
}
