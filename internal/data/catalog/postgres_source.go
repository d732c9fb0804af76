package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/database"
	"movie-reservation/pkg/utils"
)

// PostgresSource loads the catalog from a movies table instead of a CSV
// file. Record semantics are identical; insertion order follows the
// table's id column.
type PostgresSource struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresSource(db database.PgxIface, log *zap.Logger) *PostgresSource {
	return &PostgresSource{
		db:  db,
		log: log.With(zap.String("source", "postgres")),
	}
}

func (s *PostgresSource) Load(ctx context.Context) ([]entity.Movie, error) {
	query := `
		SELECT code, name, COALESCE(show_date, ''), showtime,
		       total_seats, available_seats, ticket_price, language, genre
		FROM movies
		ORDER BY id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var (
		records []entity.Movie
		skipped int
	)

	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.Code,
			&movie.Name,
			&movie.Date,
			&movie.Showtime,
			&movie.TotalSeats,
			&movie.AvailableSeats,
			&movie.TicketPrice,
			&movie.Language,
			&movie.Genre,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}

		if errs := utils.ValidateStruct(&movie); len(errs) > 0 {
			s.log.Warn("Skipping invalid movie row",
				zap.String("code", movie.Code),
				zap.String("errors", utils.FormatValidationErrors(errs)),
			)
			skipped++
			continue
		}
		records = append(records, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	s.log.Info("Catalog table loaded",
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)

	return records, nil
}
