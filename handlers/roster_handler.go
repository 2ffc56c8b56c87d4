package handlers

import (
	"net/http"

	"github.com/Dosada05/league-signups/models"
	"github.com/Dosada05/league-signups/services"
	"github.com/go-chi/chi/v5"
)

type RosterHandler struct {
	rosterService services.RosterService
}

func NewRosterHandler(rosterService services.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// componentEvent is one button click from the interaction surface: the opaque
// control id plus the identity of whoever clicked.
type componentEvent struct {
	CustomID    string `json:"custom_id"`
	Participant string `json:"participant"`
}

// ComponentEventHandler routes a button click to the coordinator by decoding
// the (game, role, action) encoded into the control id at render time.
func (h *RosterHandler) ComponentEventHandler(w http.ResponseWriter, r *http.Request) {
	var event componentEvent
	if err := readJSON(w, r, &event); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if event.Participant == "" {
		errorResponse(w, r, http.StatusUnprocessableEntity, "participant is required")
		return
	}

	gameID, role, action, err := decodeControlID(event.CustomID)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var view models.RosterView
	switch action {
	case models.ClaimActionClaim:
		view, err = h.rosterService.Claim(r.Context(), gameID, role, event.Participant)
	case models.ClaimActionRelease:
		view, err = h.rosterService.Release(r.Context(), gameID, role, event.Participant)
	}
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"roster": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ClaimRoleHandler and ReleaseRoleHandler are the explicit REST counterparts
// of the component route, addressing the slot directly.
func (h *RosterHandler) ClaimRoleHandler(w http.ResponseWriter, r *http.Request) {
	h.mutateSlot(w, r, models.ClaimActionClaim)
}

func (h *RosterHandler) ReleaseRoleHandler(w http.ResponseWriter, r *http.Request) {
	h.mutateSlot(w, r, models.ClaimActionRelease)
}

func (h *RosterHandler) mutateSlot(w http.ResponseWriter, r *http.Request, action models.ClaimAction) {
	gameID, err := getUUIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	role, err := models.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Participant string `json:"participant"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Participant == "" {
		errorResponse(w, r, http.StatusUnprocessableEntity, "participant is required")
		return
	}

	var view models.RosterView
	switch action {
	case models.ClaimActionClaim:
		view, err = h.rosterService.Claim(r.Context(), gameID, role, input.Participant)
	case models.ClaimActionRelease:
		view, err = h.rosterService.Release(r.Context(), gameID, role, input.Participant)
	}
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"roster": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RosterHandler) GameRosterHandler(w http.ResponseWriter, r *http.Request) {
	gameID, err := getUUIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.rosterService.View(gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"roster": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
