package usecase

import (
	"go.uber.org/zap"

	"movie-reservation/internal/data/catalog"
	"movie-reservation/pkg/utils"
)

type Service struct {
	Validation  ValidationService
	Reservation ReservationService
}

func NewService(
	cat *catalog.Catalog,
	console Console,
	bills BillSink,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	validation := NewValidationService(cat, log)
	return &Service{
		Validation:  validation,
		Reservation: NewReservationService(validation, console, bills, config.Session, log),
	}
}
