package adaptor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"

	"movie-reservation/internal/data/entity"
	"movie-reservation/internal/dto/response"
)

var billTemplate = template.Must(template.New("bill").Parse(
	`------ Movie Ticket Reservation Bill ------

Reservation: {{.OrderID}}
Issued:      {{.IssuedAt.Format "2006-01-02 15:04:05"}}

Movie:    {{.Movie}}{{if .Date}}
Date:     {{.Date}}{{end}}
Showtime: {{.Showtime}}
Tickets:  {{.Tickets}}
Total Cost: ${{printf "%.2f" .TotalCost}}

------- Thank you for booking with us! -------
`))

// BillHandler renders a finalized reservation as a text bill on disk and
// acknowledges it on the console, one reservation per file.
type BillHandler struct {
	dir string
	out io.Writer
	log *zap.Logger
}

func NewBillHandler(dir string, out io.Writer, log *zap.Logger) *BillHandler {
	return &BillHandler{
		dir: dir,
		out: out,
		log: log.With(zap.String("handler", "bill")),
	}
}

func (h *BillHandler) Emit(res *entity.Reservation) error {
	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return fmt.Errorf("create bill directory: %w", err)
	}

	path := filepath.Join(h.dir, res.OrderID+".txt")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bill file: %w", err)
	}
	defer f.Close()

	if err := billTemplate.Execute(f, response.ReservationToBill(res)); err != nil {
		return fmt.Errorf("render bill: %w", err)
	}

	h.log.Info("Bill generated",
		zap.String("order_id", res.OrderID),
		zap.String("path", path),
	)

	fmt.Fprintf(h.out, "Bill generated: %s (sent to %s)\n", path, res.Contact)
	return nil
}
