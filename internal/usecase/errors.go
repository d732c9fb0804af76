// Package usecase holds the validation-and-selection pipeline. Every
// booking-stage failure is a sentinel value so the interactive flow can
// branch on the kind with errors.Is instead of parsing messages.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrCodeNotFound is returned when no catalog record matches the
	// entered movie code.
	ErrCodeNotFound = errors.New("movie code not found")

	// ErrInvalidShowtime is the umbrella kind for every failed showtime
	// selection. The three sentinels below wrap it, so errors.Is against
	// ErrInvalidShowtime matches all of them while the specific reason
	// stays distinguishable.
	ErrInvalidShowtime = errors.New("invalid showtime selection")

	// ErrUnknownShowtime: the input is not a recognized showtime label.
	ErrUnknownShowtime = fmt.Errorf("%w: not a recognized showtime", ErrInvalidShowtime)

	// ErrShowtimeNotOffered: the label is valid but none of the candidate
	// records plays at that time.
	ErrShowtimeNotOffered = fmt.Errorf("%w: movie is not offered at that time", ErrInvalidShowtime)

	// ErrSelectionOutOfRange: the numbered-choice input is not an integer
	// in [1, N].
	ErrSelectionOutOfRange = fmt.Errorf("%w: selection out of range", ErrInvalidShowtime)

	// ErrInvalidQuantity covers non-numeric and non-positive ticket
	// counts.
	ErrInvalidQuantity = errors.New("invalid ticket quantity")

	// ErrOverbooking is returned when the requested quantity exceeds the
	// record's available seats. Requesting exactly the available count is
	// legal.
	ErrOverbooking = errors.New("not enough seats available")

	// ErrAttemptsExhausted aborts a session once a bounded retry budget
	// is spent. Never returned when the budget is unbounded.
	ErrAttemptsExhausted = errors.New("attempt limit reached")
)
