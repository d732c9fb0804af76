package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"movie-reservation/internal/data/catalog"
	"movie-reservation/internal/data/entity"
)

// ValidationService is the pure checking layer of the booking pipeline.
// Each method is total: it returns a value or one of the sentinel errors
// from errors.go, and touches no shared state.
type ValidationService interface {
	// ValidateCode resolves a movie code to its full candidate set, in
	// catalog order. One code can legally map to several records.
	ValidateCode(code string) ([]entity.Movie, error)

	// ValidateShowtimeLabel picks a candidate by free-text showtime
	// label (Morning/Afternoon/Evening), case-insensitively.
	ValidateShowtimeLabel(candidates []entity.Movie, input string) (entity.Movie, error)

	// ValidateShowtimeIndex picks a candidate by its 1-based position in
	// the candidate list.
	ValidateShowtimeIndex(candidates []entity.Movie, input string) (entity.Movie, error)

	// ValidateTicketQuantity parses and bounds-checks a ticket count
	// against the chosen record's available seats.
	ValidateTicketQuantity(input string, movie entity.Movie) (int, error)
}

type validationService struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

func NewValidationService(cat *catalog.Catalog, log *zap.Logger) ValidationService {
	return &validationService{
		catalog: cat,
		log:     log.With(zap.String("service", "validation")),
	}
}

func (s *validationService) ValidateCode(code string) ([]entity.Movie, error) {
	candidates := s.catalog.FindByCode(strings.TrimSpace(code))
	if len(candidates) == 0 {
		s.log.Debug("Movie code not found", zap.String("code", code))
		return nil, ErrCodeNotFound
	}
	return candidates, nil
}

func (s *validationService) ValidateShowtimeLabel(candidates []entity.Movie, input string) (entity.Movie, error) {
	label, ok := recognizeShowtime(strings.TrimSpace(input))
	if !ok {
		return entity.Movie{}, ErrUnknownShowtime
	}

	// First match wins; candidates keep catalog order, so the choice is
	// deterministic even if two records share a label.
	for _, m := range candidates {
		if strings.EqualFold(string(m.Showtime), string(label)) {
			return m, nil
		}
	}
	return entity.Movie{}, ErrShowtimeNotOffered
}

func (s *validationService) ValidateShowtimeIndex(candidates []entity.Movie, input string) (entity.Movie, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return entity.Movie{}, ErrSelectionOutOfRange
	}
	if idx < 1 || idx > len(candidates) {
		return entity.Movie{}, fmt.Errorf("%w: pick between 1 and %d", ErrSelectionOutOfRange, len(candidates))
	}
	return candidates[idx-1], nil
}

func (s *validationService) ValidateTicketQuantity(input string, movie entity.Movie) (int, error) {
	tickets, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: not a number", ErrInvalidQuantity)
	}
	if tickets <= 0 {
		return 0, fmt.Errorf("%w: must be a positive integer", ErrInvalidQuantity)
	}
	// Booking every remaining seat is allowed; only exceeding them fails.
	if tickets > movie.AvailableSeats {
		s.log.Debug("Overbooking attempt",
			zap.String("code", movie.Code),
			zap.Int("requested", tickets),
			zap.Int("available", movie.AvailableSeats),
		)
		return 0, ErrOverbooking
	}
	return tickets, nil
}

func recognizeShowtime(input string) (entity.Showtime, bool) {
	for _, st := range entity.ValidShowtimes {
		if strings.EqualFold(string(st), input) {
			return st, true
		}
	}
	return "", false
}
