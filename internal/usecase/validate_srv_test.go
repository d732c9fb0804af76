package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movie-reservation/internal/data/catalog"
	"movie-reservation/internal/data/entity"
)

func newValidator(records []entity.Movie) ValidationService {
	return NewValidationService(catalog.New(records), zap.NewNop())
}

func sciFiEpic() entity.Movie {
	return entity.Movie{
		Code: "M1", Name: "Sci-Fi Epic", Showtime: entity.ShowtimeEvening,
		TotalSeats: 100, AvailableSeats: 5, TicketPrice: 12.50,
	}
}

func heistCandidates() []entity.Movie {
	return []entity.Movie{
		{Code: "M2", Name: "Midnight Heist", Showtime: entity.ShowtimeMorning, TotalSeats: 80, AvailableSeats: 42, TicketPrice: 10.00},
		{Code: "M2", Name: "Midnight Heist", Showtime: entity.ShowtimeEvening, TotalSeats: 80, AvailableSeats: 15, TicketPrice: 11.00},
	}
}

func TestValidateCode_LowercaseInputMatches(t *testing.T) {
	v := newValidator([]entity.Movie{sciFiEpic()})

	candidates, err := v.ValidateCode("m1")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Sci-Fi Epic", candidates[0].Name)
}

func TestValidateCode_UnknownCode(t *testing.T) {
	v := newValidator([]entity.Movie{sciFiEpic()})

	candidates, err := v.ValidateCode("M9")
	assert.ErrorIs(t, err, ErrCodeNotFound)
	assert.Nil(t, candidates)
}

func TestValidateCode_ReturnsFullCandidateSet(t *testing.T) {
	v := newValidator(heistCandidates())

	candidates, err := v.ValidateCode("M2")
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestValidateShowtimeLabel_UnrecognizedLabel(t *testing.T) {
	v := newValidator(nil)

	_, err := v.ValidateShowtimeLabel(heistCandidates(), "Night")
	assert.ErrorIs(t, err, ErrUnknownShowtime)
	assert.ErrorIs(t, err, ErrInvalidShowtime)
}

func TestValidateShowtimeLabel_NotOfferedAtThatTime(t *testing.T) {
	v := newValidator(nil)

	// Afternoon is a valid label but Midnight Heist has no afternoon
	// record, so the diagnosis must differ from the unknown-label case.
	_, err := v.ValidateShowtimeLabel(heistCandidates(), "Afternoon")
	assert.ErrorIs(t, err, ErrShowtimeNotOffered)
	assert.NotErrorIs(t, err, ErrUnknownShowtime)
}

func TestValidateShowtimeLabel_SelectsMatchingCandidate(t *testing.T) {
	v := newValidator(nil)

	chosen, err := v.ValidateShowtimeLabel(heistCandidates(), "Evening")
	require.NoError(t, err)
	assert.Equal(t, entity.ShowtimeEvening, chosen.Showtime)
	assert.Equal(t, 11.00, chosen.TicketPrice)
}

func TestValidateShowtimeLabel_CaseInsensitive(t *testing.T) {
	v := newValidator(nil)

	chosen, err := v.ValidateShowtimeLabel(heistCandidates(), "evening")
	require.NoError(t, err)
	assert.Equal(t, entity.ShowtimeEvening, chosen.Showtime)
}

func TestValidateShowtimeIndex_PicksByPosition(t *testing.T) {
	v := newValidator(nil)

	chosen, err := v.ValidateShowtimeIndex(heistCandidates(), "2")
	require.NoError(t, err)
	assert.Equal(t, entity.ShowtimeEvening, chosen.Showtime)
}

func TestValidateShowtimeIndex_RejectsOutOfRangeAndNonInteger(t *testing.T) {
	v := newValidator(nil)

	for _, input := range []string{"0", "3", "-1", "abc", ""} {
		_, err := v.ValidateShowtimeIndex(heistCandidates(), input)
		assert.ErrorIs(t, err, ErrSelectionOutOfRange, "input %q", input)
		assert.ErrorIs(t, err, ErrInvalidShowtime, "input %q", input)
	}
}

func TestValidateTicketQuantity_Partition(t *testing.T) {
	v := newValidator(nil)
	movie := sciFiEpic() // 5 seats available

	// q <= 0 -> invalid, 0 < q <= 5 -> ok, q > 5 -> overbooking. The
	// three ranges cover all integers without overlap.
	cases := []struct {
		input string
		want  error
	}{
		{"-3", ErrInvalidQuantity},
		{"0", ErrInvalidQuantity},
		{"abc", ErrInvalidQuantity},
		{"", ErrInvalidQuantity},
		{"1", nil},
		{"5", nil},
		{"6", ErrOverbooking},
		{"10", ErrOverbooking},
	}

	for _, tc := range cases {
		got, err := v.ValidateTicketQuantity(tc.input, movie)
		if tc.want == nil {
			assert.NoError(t, err, "input %q", tc.input)
			assert.Positive(t, got, "input %q", tc.input)
		} else {
			assert.ErrorIs(t, err, tc.want, "input %q", tc.input)
			assert.Zero(t, got, "input %q", tc.input)
		}
	}
}

func TestValidateTicketQuantity_ExactCapacityAccepted(t *testing.T) {
	v := newValidator(nil)
	movie := sciFiEpic()

	tickets, err := v.ValidateTicketQuantity("5", movie)
	require.NoError(t, err)
	assert.Equal(t, movie.AvailableSeats, tickets)
}
