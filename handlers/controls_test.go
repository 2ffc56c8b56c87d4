package handlers

import (
	"testing"

	"github.com/Dosada05/league-signups/models"
	"github.com/Dosada05/league-signups/services"
	"github.com/google/uuid"
)

func TestControlIDRoundTrip(t *testing.T) {
	gameID := uuid.New()
	for _, role := range models.Roles {
		for _, action := range []models.ClaimAction{models.ClaimActionClaim, models.ClaimActionRelease} {
			customID := encodeControlID(gameID, role, action)
			gotGame, gotRole, gotAction, err := decodeControlID(customID)
			if err != nil {
				t.Fatalf("decodeControlID(%q) error = %v", customID, err)
			}
			if gotGame != gameID || gotRole != role || gotAction != action {
				t.Errorf("round trip of %q got = %s/%s/%s", customID, gotGame, gotRole, gotAction)
			}
		}
	}
}

func TestBuildRosterControlsPerGame(t *testing.T) {
	proposed, err := services.ParseSignupInput("2024-06-01", "Foxes,Bears", "18:00,16:30")
	if err != nil {
		t.Fatalf("ParseSignupInput() error = %v", err)
	}
	signup := services.AssembleSignup(proposed)

	controls := BuildRosterControls(signup)
	if len(controls) != 2 {
		t.Fatalf("control groups got = %d, want one per game", len(controls))
	}

	for i, gc := range controls {
		if gc.GameID != signup.Games[i].ID {
			t.Errorf("group %d game id got = %s, want %s", i, gc.GameID, signup.Games[i].ID)
		}
		if len(gc.Rows) != 2 {
			t.Fatalf("group %d rows got = %d, want 2", i, len(gc.Rows))
		}
		// Пять основных ролей в первом ряду, FILL отдельным рядом.
		if len(gc.Rows[0].Buttons) != 5 {
			t.Errorf("group %d main row buttons got = %d, want 5", i, len(gc.Rows[0].Buttons))
		}
		if len(gc.Rows[1].Buttons) != 1 || gc.Rows[1].Buttons[0].Label != "FILL" {
			t.Errorf("group %d fill row got = %+v", i, gc.Rows[1])
		}
		for _, row := range gc.Rows {
			for _, button := range row.Buttons {
				gotGame, _, gotAction, err := decodeControlID(button.CustomID)
				if err != nil {
					t.Errorf("button %q not decodable: %v", button.CustomID, err)
					continue
				}
				if gotGame != gc.GameID || gotAction != models.ClaimActionClaim {
					t.Errorf("button %q routes to %s/%s", button.CustomID, gotGame, gotAction)
				}
			}
		}
	}
}
