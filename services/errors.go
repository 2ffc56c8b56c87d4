package services

import (
	"errors"
	"fmt"
)

// Общие категории ошибок, используемые в сервисах и маппинге HTTP.
var (
	// User-input-shaped, always recoverable. Typed validation errors below
	// match this category through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// Infrastructure-shaped. Fatal at startup, retryable per-operation;
	// surfaced to users as a generic message, never with internal detail.
	ErrStorageUnavailable = errors.New("could not save right now, try again")

	// Intake session expired or never existed.
	ErrSessionNotFound = errors.New("signup session not found or expired")
)

// BadDateError rejects a date field that is not a valid YYYY-MM-DD date.
type BadDateError struct {
	Input string
}

func (e *BadDateError) Error() string {
	return fmt.Sprintf("Invalid date, expected `yyyy-MM-dd` got `%s`", e.Input)
}

func (e *BadDateError) Is(target error) bool { return target == ErrValidationFailed }

// BadTimeError rejects the first time token that is not a valid HH:MM time.
type BadTimeError struct {
	Token string
}

func (e *BadTimeError) Error() string {
	return fmt.Sprintf("Invalid time, expected `HH:mm` got `%s`", e.Token)
}

func (e *BadTimeError) Is(target error) bool { return target == ErrValidationFailed }

// CountMismatchError reports both counts when opponents and game times do not
// pair up one to one.
type CountMismatchError struct {
	Opponents int
	Times     int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("Missmatched opponents and game times, got %d opponents and %d game times", e.Opponents, e.Times)
}

func (e *CountMismatchError) Is(target error) bool { return target == ErrValidationFailed }

// DuplicateTimeError rejects two games scheduled at the identical kickoff
// time. The time is the join key between times and opponents, so a duplicate
// would silently drop a pairing.
type DuplicateTimeError struct {
	Token string
}

func (e *DuplicateTimeError) Error() string {
	return fmt.Sprintf("Duplicate game time `%s`, every game needs a distinct time", e.Token)
}

func (e *DuplicateTimeError) Is(target error) bool { return target == ErrValidationFailed }
