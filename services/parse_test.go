package services

import (
	"errors"
	"testing"
)

func TestParseSignupInputSuccess(t *testing.T) {
	proposed, err := ParseSignupInput("2024-06-01", "Foxes,Bears", "18:00,16:30")
	if err != nil {
		t.Fatalf("ParseSignupInput() error = %v", err)
	}

	if got := proposed.Date.Format("2006-01-02"); got != "2024-06-01" {
		t.Errorf("date got = %s, want 2024-06-01", got)
	}
	if len(proposed.Pairs) != 2 {
		t.Fatalf("pairs got = %d, want 2", len(proposed.Pairs))
	}
	// Pairing is positional, not sorted: typed order must survive.
	if proposed.Pairs[0].Time != "18:00" || proposed.Pairs[0].Opponent != "Foxes" {
		t.Errorf("first pair got = %+v, want 18:00/Foxes", proposed.Pairs[0])
	}
	if proposed.Pairs[1].Time != "16:30" || proposed.Pairs[1].Opponent != "Bears" {
		t.Errorf("second pair got = %+v, want 16:30/Bears", proposed.Pairs[1])
	}
}

func TestParseSignupInputTrimsTokens(t *testing.T) {
	proposed, err := ParseSignupInput(" 2024-06-01 ", " Foxes , Bears ", " 18:00 , 16:30 ")
	if err != nil {
		t.Fatalf("ParseSignupInput() error = %v", err)
	}
	if proposed.Pairs[0].Opponent != "Foxes" || proposed.Pairs[1].Opponent != "Bears" {
		t.Errorf("opponent names not trimmed: %+v", proposed.Pairs)
	}
}

func TestParseSignupInputRejections(t *testing.T) {
	cases := []struct {
		name      string
		date      string
		opponents string
		times     string
		check     func(t *testing.T, err error)
	}{
		{
			name: "semantically invalid date",
			date: "2024-13-01", opponents: "Foxes", times: "18:00",
			check: func(t *testing.T, err error) {
				var badDate *BadDateError
				if !errors.As(err, &badDate) {
					t.Fatalf("error got = %v, want BadDateError", err)
				}
				if badDate.Input != "2024-13-01" {
					t.Errorf("BadDateError.Input got = %q, want raw input text", badDate.Input)
				}
			},
		},
		{
			name: "syntactically invalid date",
			date: "June 1st", opponents: "Foxes", times: "18:00",
			check: func(t *testing.T, err error) {
				var badDate *BadDateError
				if !errors.As(err, &badDate) {
					t.Fatalf("error got = %v, want BadDateError", err)
				}
			},
		},
		{
			name: "invalid time",
			date: "2024-06-01", opponents: "Foxes", times: "25:61",
			check: func(t *testing.T, err error) {
				var badTime *BadTimeError
				if !errors.As(err, &badTime) {
					t.Fatalf("error got = %v, want BadTimeError", err)
				}
				if badTime.Token != "25:61" {
					t.Errorf("BadTimeError.Token got = %q, want 25:61", badTime.Token)
				}
			},
		},
		{
			name: "fail-fast on first bad time token",
			date: "2024-06-01", opponents: "A,B,C", times: "12:00,nope,9:99",
			check: func(t *testing.T, err error) {
				var badTime *BadTimeError
				if !errors.As(err, &badTime) {
					t.Fatalf("error got = %v, want BadTimeError", err)
				}
				if badTime.Token != "nope" {
					t.Errorf("BadTimeError.Token got = %q, want first failing token", badTime.Token)
				}
			},
		},
		{
			name: "count mismatch reports both counts",
			date: "2024-06-01", opponents: "Foxes,Bears", times: "18:00,19:00,20:00",
			check: func(t *testing.T, err error) {
				var mismatch *CountMismatchError
				if !errors.As(err, &mismatch) {
					t.Fatalf("error got = %v, want CountMismatchError", err)
				}
				if mismatch.Opponents != 2 || mismatch.Times != 3 {
					t.Errorf("counts got = %d/%d, want 2/3", mismatch.Opponents, mismatch.Times)
				}
			},
		},
		{
			name: "duplicate kickoff time",
			date: "2024-06-01", opponents: "Foxes,Bears", times: "18:00,18:00",
			check: func(t *testing.T, err error) {
				var dup *DuplicateTimeError
				if !errors.As(err, &dup) {
					t.Fatalf("error got = %v, want DuplicateTimeError", err)
				}
			},
		},
		{
			name: "empty opponents field",
			date: "2024-06-01", opponents: "  ", times: "18:00",
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrValidationFailed) {
					t.Fatalf("error got = %v, want ErrValidationFailed", err)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proposed, err := ParseSignupInput(tc.date, tc.opponents, tc.times)
			if err == nil {
				t.Fatalf("ParseSignupInput() = %+v, want error", proposed)
			}
			// Every rejection belongs to the validation category.
			if !errors.Is(err, ErrValidationFailed) {
				t.Errorf("error %v does not match ErrValidationFailed", err)
			}
			tc.check(t, err)
		})
	}
}
