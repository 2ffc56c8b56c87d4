package handlers

import (
	"fmt"
	"strings"

	"github.com/Dosada05/league-signups/models"
	"github.com/google/uuid"
)

// Role buttons are rendered once per game: the custom id carries the game and
// the role, so a click is routable without any other context. Five role
// buttons sit in one row, FILL on its own row.
//
// Wire format: roster:<game_id>:<role>:<claim|release>

const controlPrefix = "roster"

type Button struct {
	CustomID string `json:"custom_id"`
	Label    string `json:"label"`
}

type ControlRow struct {
	Buttons []Button `json:"buttons"`
}

// GameControls is the set of claim controls for one game.
type GameControls struct {
	GameID   uuid.UUID    `json:"game_id"`
	Time     string       `json:"time"`
	Opponent string       `json:"opponent"`
	Rows     []ControlRow `json:"rows"`
}

func encodeControlID(gameID uuid.UUID, role models.Role, action models.ClaimAction) string {
	return fmt.Sprintf("%s:%s:%s:%s", controlPrefix, gameID, role, action)
}

func decodeControlID(customID string) (uuid.UUID, models.Role, models.ClaimAction, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 4 || parts[0] != controlPrefix {
		return uuid.Nil, "", "", fmt.Errorf("unrecognized control id %q", customID)
	}
	gameID, err := uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, "", "", fmt.Errorf("control id %q has an invalid game id", customID)
	}
	role, err := models.ParseRole(parts[2])
	if err != nil {
		return uuid.Nil, "", "", fmt.Errorf("control id %q: %w", customID, err)
	}
	action := models.ClaimAction(parts[3])
	if action != models.ClaimActionClaim && action != models.ClaimActionRelease {
		return uuid.Nil, "", "", fmt.Errorf("control id %q has an unknown action", customID)
	}
	return gameID, role, action, nil
}

// BuildRosterControls renders the claim button layout for every game of a
// signup.
func BuildRosterControls(signup *models.Signup) []GameControls {
	controls := make([]GameControls, 0, len(signup.Games))
	for _, game := range signup.Games {
		mainRow := ControlRow{}
		for _, role := range models.Roles {
			if role == models.RoleFill {
				continue
			}
			mainRow.Buttons = append(mainRow.Buttons, Button{
				CustomID: encodeControlID(game.ID, role, models.ClaimActionClaim),
				Label:    role.Label(),
			})
		}
		fillRow := ControlRow{Buttons: []Button{{
			CustomID: encodeControlID(game.ID, models.RoleFill, models.ClaimActionClaim),
			Label:    models.RoleFill.Label(),
		}}}

		opponent := ""
		if game.Opponent != nil {
			opponent = game.Opponent.Name
		}
		controls = append(controls, GameControls{
			GameID:   game.ID,
			Time:     game.Time,
			Opponent: opponent,
			Rows:     []ControlRow{mainRow, fillRow},
		})
	}
	return controls
}
