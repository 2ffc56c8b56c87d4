package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/league-signups/models"
)

// ParseSignupInput validates the three raw modal fields and normalizes them
// into a ProposedSignup. It is a pure function: no side effects, fail-fast on
// the first invalid token, and pairs keep the order the organizer typed.
func ParseSignupInput(dateText, opponentsText, timesText string) (*models.ProposedSignup, error) {
	date, err := time.Parse(models.DateLayout, strings.TrimSpace(dateText))
	if err != nil {
		return nil, &BadDateError{Input: dateText}
	}

	timeTokens := strings.Split(timesText, ",")
	times := make([]string, 0, len(timeTokens))
	seen := make(map[string]bool, len(timeTokens))
	for _, token := range timeTokens {
		token = strings.TrimSpace(token)
		parsed, err := time.Parse(models.TimeLayout, token)
		if err != nil {
			return nil, &BadTimeError{Token: token}
		}
		normalized := parsed.Format(models.TimeLayout)
		if seen[normalized] {
			return nil, &DuplicateTimeError{Token: normalized}
		}
		seen[normalized] = true
		times = append(times, normalized)
	}

	if strings.TrimSpace(opponentsText) == "" {
		return nil, fmt.Errorf("%w: opponents field must not be empty", ErrValidationFailed)
	}
	opponents := strings.Split(opponentsText, ",")
	for i, name := range opponents {
		opponents[i] = strings.TrimSpace(name)
	}

	if len(opponents) != len(times) {
		return nil, &CountMismatchError{Opponents: len(opponents), Times: len(times)}
	}

	pairs := make([]models.GamePair, len(times))
	for i, t := range times {
		pairs[i] = models.GamePair{Time: t, Opponent: opponents[i]}
	}

	return &models.ProposedSignup{Date: date, Pairs: pairs}, nil
}
