package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout и TimeLayout задают форматы, в которых организатор вводит дату и время игр.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// GamePair is one (kickoff time, opponent name) pairing produced by the
// parser. Opponents are still plain names here, not persisted entities.
type GamePair struct {
	Time     string `json:"time"` // normalized HH:MM
	Opponent string `json:"opponent"`
}

// ProposedSignup is a validated but not yet persisted signup proposal.
// Pairs keep the order the organizer typed them in.
type ProposedSignup struct {
	Date  time.Time  `json:"date"`
	Pairs []GamePair `json:"pairs"`
}

type Signup struct {
	ID    uuid.UUID `json:"id"`
	Date  time.Time `json:"date"`
	Games []*Game   `json:"games"`
}

type Opponent struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Game struct {
	ID         uuid.UUID `json:"id"`
	SignupID   uuid.UUID `json:"signup_id"`
	Time       string    `json:"time"` // HH:MM, unique within a signup
	OpponentID uuid.UUID `json:"opponent_id"`

	Opponent *Opponent `json:"opponent,omitempty"`
}

// DateText returns the signup date in the wire/storage format.
func (s *Signup) DateText() string {
	return s.Date.Format(DateLayout)
}
