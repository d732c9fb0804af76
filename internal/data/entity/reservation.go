package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a finalized booking. It exists only long enough to be
// handed to the bill sink; nothing persists it across sessions.
type Reservation struct {
	ID        uuid.UUID
	OrderID   string // human-readable, BOOK-YYYYMMDD-HHMMSS-NNNN
	Movie     Movie
	Tickets   int
	TotalCost float64
	Contact   string
	CreatedAt time.Time
}
