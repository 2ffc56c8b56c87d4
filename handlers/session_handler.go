package handlers

import (
	"net/http"

	"github.com/Dosada05/league-signups/services"
)

type SessionHandler struct {
	sessionService services.SessionService
	signupHandler  *SignupHandler
}

func NewSessionHandler(sessionService services.SessionService, signupHandler *SignupHandler) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		signupHandler:  signupHandler,
	}
}

// OpenSessionHandler starts the modal flow: the surface shows the three input
// fields and has until expires_at to post them back.
func (h *SessionHandler) OpenSessionHandler(w http.ResponseWriter, r *http.Request) {
	session := h.sessionService.Open()

	payload := jsonResponse{
		"session": session,
		"fields":  []string{"Date (format `YYYY-MM-DD`)", "Opponents (comma separated)", "Game times (format `HH:MM` comma separated)"},
	}
	if err := writeJSON(w, http.StatusCreated, payload, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SessionHandler) SubmitSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, err := getUUIDFromURL(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input signupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	signup, err := h.sessionService.Submit(r.Context(), sessionID, input.Date, input.Opponents, input.Times)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.signupHandler.writeSignup(w, r, http.StatusCreated, signup)
}
