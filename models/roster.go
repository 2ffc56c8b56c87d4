package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleAdc     Role = "adc"
	RoleSupport Role = "support"
	RoleFill    Role = "fill"
)

// Roles lists every claimable role in fixed render order.
var Roles = []Role{RoleTop, RoleJungle, RoleMid, RoleAdc, RoleSupport, RoleFill}

// ParseRole maps a wire token to a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Label returns the button label used by the interaction surface.
func (r Role) Label() string {
	if r == RoleFill {
		return "FILL"
	}
	return string(r[0]-'a'+'A') + string(r[1:])
}

// RoleSlot is one assignable position within one game. An empty Participant
// means the slot is unclaimed.
type RoleSlot struct {
	Role        Role   `json:"role"`
	Participant string `json:"participant,omitempty"`
}

// RosterView is a point-in-time snapshot of all six slots of one game.
type RosterView struct {
	SignupID uuid.UUID  `json:"signup_id"`
	GameID   uuid.UUID  `json:"game_id"`
	Slots    []RoleSlot `json:"slots"`
}

type ClaimAction string

const (
	ClaimActionClaim   ClaimAction = "claim"
	ClaimActionRelease ClaimAction = "release"
)

// ClaimEvent is one durable audit record of a successful roster mutation.
type ClaimEvent struct {
	ID          int64       `json:"id"`
	GameID      uuid.UUID   `json:"game_id"`
	Role        Role        `json:"role"`
	Participant string      `json:"participant"`
	Action      ClaimAction `json:"action"`
	CreatedAt   time.Time   `json:"created_at"`
}
