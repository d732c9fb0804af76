package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/utils"
)

// Console is the blocking line-oriented surface the flow talks to. The
// adaptor layer provides the real terminal; tests provide a script.
type Console interface {
	ReadLine(prompt string) (string, error)
	WriteLine(format string, args ...any)
}

// BillSink consumes a finalized reservation and renders it. Format and
// delivery are the sink's business.
type BillSink interface {
	Emit(res *entity.Reservation) error
}

// ReservationService drives one booking session:
//
//	AwaitingCode -> AwaitingShowtime -> AwaitingQuantity -> Confirmed
//
// A validation failure reports one error line and re-enters the same
// state. When a code has exactly one record the showtime step is skipped.
type ReservationService interface {
	Run(ctx context.Context) error
}

type sessionState int

const (
	stateAwaitingCode sessionState = iota
	stateAwaitingShowtime
	stateAwaitingQuantity
)

type reservationService struct {
	validator ValidationService
	console   Console
	bills     BillSink
	cfg       utils.SessionConfig
	log       *zap.Logger
}

func NewReservationService(
	validator ValidationService,
	console Console,
	bills BillSink,
	cfg utils.SessionConfig,
	log *zap.Logger,
) ReservationService {
	return &reservationService{
		validator: validator,
		console:   console,
		bills:     bills,
		cfg:       cfg,
		log:       log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) Run(ctx context.Context) error {
	var (
		state      = stateAwaitingCode
		candidates []entity.Movie
		chosen     entity.Movie
		tickets    int
		attempts   int
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch state {
		case stateAwaitingCode:
			input, err := s.console.ReadLine("Enter Movie Code: ")
			if err != nil {
				return fmt.Errorf("read movie code: %w", err)
			}
			candidates, err = s.validator.ValidateCode(input)
			if err != nil {
				if abort := s.reportFailure(&attempts, err); abort != nil {
					return abort
				}
				continue
			}
			attempts = 0
			if len(candidates) == 1 {
				// Single record for this code: nothing to disambiguate.
				chosen = candidates[0]
				state = stateAwaitingQuantity
			} else {
				state = stateAwaitingShowtime
			}

		case stateAwaitingShowtime:
			movie, err := s.promptShowtime(candidates)
			if err != nil {
				var readErr *readError
				if errors.As(err, &readErr) {
					return readErr.err
				}
				if abort := s.reportFailure(&attempts, err); abort != nil {
					return abort
				}
				continue
			}
			attempts = 0
			chosen = movie
			state = stateAwaitingQuantity

		case stateAwaitingQuantity:
			input, err := s.console.ReadLine("Enter Number of Tickets: ")
			if err != nil {
				return fmt.Errorf("read ticket quantity: %w", err)
			}
			tickets, err = s.validator.ValidateTicketQuantity(input, chosen)
			if err != nil {
				if abort := s.reportFailure(&attempts, err); abort != nil {
					return abort
				}
				continue
			}
			return s.confirm(chosen, tickets)
		}
	}
}

// promptShowtime runs the configured disambiguation protocol against the
// candidate set. Read failures are wrapped so the caller can tell them
// apart from validation failures.
func (s *reservationService) promptShowtime(candidates []entity.Movie) (entity.Movie, error) {
	if s.cfg.ShowtimeSelect == "indexed" {
		s.console.WriteLine("Available showtimes:")
		for i, m := range candidates {
			if m.Date != "" {
				s.console.WriteLine("  %d. %s %s", i+1, m.Date, m.Showtime)
			} else {
				s.console.WriteLine("  %d. %s", i+1, m.Showtime)
			}
		}
		input, err := s.console.ReadLine(fmt.Sprintf("Select Showtime [1-%d]: ", len(candidates)))
		if err != nil {
			return entity.Movie{}, &readError{err: fmt.Errorf("read showtime selection: %w", err)}
		}
		return s.validator.ValidateShowtimeIndex(candidates, input)
	}

	input, err := s.console.ReadLine("Enter Showtime (Morning/Afternoon/Evening): ")
	if err != nil {
		return entity.Movie{}, &readError{err: fmt.Errorf("read showtime: %w", err)}
	}
	return s.validator.ValidateShowtimeLabel(candidates, input)
}

func (s *reservationService) confirm(chosen entity.Movie, tickets int) error {
	totalCost := float64(tickets) * chosen.TicketPrice

	s.console.WriteLine("")
	s.console.WriteLine("Booking Confirmed!")
	s.console.WriteLine("Movie: %s", chosen.Name)
	if chosen.Date != "" {
		s.console.WriteLine("Date: %s", chosen.Date)
	}
	s.console.WriteLine("Showtime: %s", chosen.Showtime)
	s.console.WriteLine("Tickets: %d", tickets)
	s.console.WriteLine("Total Cost: $%.2f", totalCost)

	contact, err := s.console.ReadLine("Enter Email for Bill: ")
	if err != nil {
		return fmt.Errorf("read contact email: %w", err)
	}

	res := &entity.Reservation{
		ID:        utils.GenerateUUID(),
		OrderID:   utils.GenerateOrderID(),
		Movie:     chosen,
		Tickets:   tickets,
		TotalCost: totalCost,
		Contact:   contact,
		CreatedAt: time.Now(),
	}

	s.log.Info("Reservation confirmed",
		zap.String("order_id", res.OrderID),
		zap.String("code", chosen.Code),
		zap.String("movie", chosen.Name),
		zap.Int("tickets", tickets),
		zap.Float64("total_cost", totalCost),
	)

	// Seat inventory is deliberately not decremented; the catalog stays
	// read-only for the lifetime of the process.
	if err := s.bills.Emit(res); err != nil {
		s.console.WriteLine("Error generating bill: %v", err)
		s.log.Error("Failed to emit bill",
			zap.Error(err),
			zap.String("order_id", res.OrderID),
		)
		return nil
	}

	return nil
}

// reportFailure prints the single user-facing error line for a failed
// validation and charges it against the retry budget. A nil return means
// the state is re-entered; MaxAttempts of 0 never aborts.
func (s *reservationService) reportFailure(attempts *int, cause error) error {
	s.console.WriteLine("Error: %s", userMessage(cause))

	*attempts++
	if s.cfg.MaxAttempts > 0 && *attempts >= s.cfg.MaxAttempts {
		s.console.WriteLine("Too many failed attempts, giving up.")
		s.log.Warn("Session aborted after repeated failures",
			zap.Int("attempts", *attempts),
			zap.Error(cause),
		)
		return fmt.Errorf("%w after %d tries: %w", ErrAttemptsExhausted, *attempts, cause)
	}
	return nil
}

// userMessage keeps the retry loop's diagnostics human: one line naming
// the problem, no internals.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrCodeNotFound):
		return "Movie code not found! Please enter a valid code."
	case errors.Is(err, ErrUnknownShowtime):
		return "Invalid showtime! Please enter Morning, Afternoon, or Evening."
	case errors.Is(err, ErrShowtimeNotOffered):
		return "This movie is not available at the selected showtime!"
	case errors.Is(err, ErrSelectionOutOfRange):
		return "Invalid selection! Please pick one of the listed showtimes."
	case errors.Is(err, ErrOverbooking):
		return "Not enough seats available! Try booking fewer tickets."
	case errors.Is(err, ErrInvalidQuantity):
		return "Invalid number! Please enter a positive integer."
	default:
		return err.Error()
	}
}

// readError marks an input-source failure inside promptShowtime so it is
// not mistaken for a validation failure and retried.
type readError struct {
	err error
}

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }
