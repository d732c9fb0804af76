package cmd

import (
	"context"
	"os"

	"movie-reservation/internal/usecase"
)

// RunConsole drives one interactive booking session to completion. The
// flow has already reported any user-facing error by the time it
// returns, so a failed session only needs the exit code.
func RunConsole(flow usecase.ReservationService) {
	if err := flow.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}
