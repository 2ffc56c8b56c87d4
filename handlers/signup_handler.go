package handlers

import (
	"net/http"

	"github.com/Dosada05/league-signups/models"
	"github.com/Dosada05/league-signups/services"
)

type SignupHandler struct {
	signupService services.SignupService
	rosterService services.RosterService
}

func NewSignupHandler(signupService services.SignupService, rosterService services.RosterService) *SignupHandler {
	return &SignupHandler{
		signupService: signupService,
		rosterService: rosterService,
	}
}

// signupInput carries the three raw modal fields exactly as typed.
type signupInput struct {
	Date      string `json:"date"`
	Opponents string `json:"opponents"`
	Times     string `json:"times"`
}

func (h *SignupHandler) CreateSignupHandler(w http.ResponseWriter, r *http.Request) {
	var input signupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	signup, err := h.signupService.CreateFromInput(r.Context(), input.Date, input.Opponents, input.Times)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.writeSignup(w, r, http.StatusCreated, signup)
}

func (h *SignupHandler) GetSignupHandler(w http.ResponseWriter, r *http.Request) {
	signupID, err := getUUIDFromURL(r, "signupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	signup, err := h.signupService.GetSignup(r.Context(), signupID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.writeSignup(w, r, http.StatusOK, signup)
}

// writeSignup renders the outbound surface payload: the entities, the sorted
// summary text and the claim controls, plus the current roster of every game.
func (h *SignupHandler) writeSignup(w http.ResponseWriter, r *http.Request, status int, signup *models.Signup) {
	rosters := make([]models.RosterView, 0, len(signup.Games))
	for _, game := range signup.Games {
		if view, err := h.rosterService.View(game.ID); err == nil {
			rosters = append(rosters, view)
		}
	}

	payload := jsonResponse{
		"signup":   signup,
		"summary":  h.signupService.RenderSummary(signup),
		"controls": BuildRosterControls(signup),
		"rosters":  rosters,
	}
	if err := writeJSON(w, status, payload, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
