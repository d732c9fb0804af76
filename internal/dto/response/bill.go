package response

import (
	"time"

	"movie-reservation/internal/data/entity"
)

// BillData is the flattened view of a reservation handed to the bill
// template.
type BillData struct {
	OrderID   string
	Movie     string
	Date      string
	Showtime  string
	Language  string
	Genre     string
	Tickets   int
	TotalCost float64
	Contact   string
	IssuedAt  time.Time
}

func ReservationToBill(res *entity.Reservation) BillData {
	return BillData{
		OrderID:   res.OrderID,
		Movie:     res.Movie.Name,
		Date:      res.Movie.Date,
		Showtime:  string(res.Movie.Showtime),
		Language:  res.Movie.Language,
		Genre:     res.Movie.Genre,
		Tickets:   res.Tickets,
		TotalCost: res.TotalCost,
		Contact:   res.Contact,
		IssuedAt:  res.CreatedAt,
	}
}
