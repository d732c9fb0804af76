package entity

type Showtime string

const (
	ShowtimeMorning   Showtime = "Morning"
	ShowtimeAfternoon Showtime = "Afternoon"
	ShowtimeEvening   Showtime = "Evening"
)

// ValidShowtimes lists the labels accepted by the free-text showtime
// selection protocol, in prompt order.
var ValidShowtimes = []Showtime{
	ShowtimeMorning,
	ShowtimeAfternoon,
	ShowtimeEvening,
}

// Movie is one bookable (movie, date, showtime) combination. Code is not
// unique: the same code can appear for several showtimes or dates.
type Movie struct {
	Code           string   `validate:"required"`
	Name           string   `validate:"required"`
	Date           string   // empty when the catalog variant has no date column
	Showtime       Showtime `validate:"required"`
	Language       string
	Genre          string
	TotalSeats     int     `validate:"gte=0"`
	AvailableSeats int     `validate:"gte=0,ltefield=TotalSeats"`
	TicketPrice    float64 `validate:"gte=0"`
}
