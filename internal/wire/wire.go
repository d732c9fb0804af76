package wire

import (
	"os"

	"go.uber.org/zap"

	"movie-reservation/internal/adaptor"
	"movie-reservation/internal/data/catalog"
	"movie-reservation/internal/usecase"
	"movie-reservation/pkg/utils"
)

// App holds the wired session entry point.
type App struct {
	Reservation usecase.ReservationService
}

// Wiring connects the catalog, the validation pipeline, the terminal and
// the bill sink into one runnable session.
func Wiring(cat *catalog.Catalog, config *utils.Config, logger *zap.Logger) *App {
	console := adaptor.NewConsoleHandler(os.Stdin, os.Stdout)
	bills := adaptor.NewBillHandler(config.Bill.Dir, os.Stdout, logger)

	service := usecase.NewService(cat, console, bills, config, logger)

	return &App{
		Reservation: service.Reservation,
	}
}
