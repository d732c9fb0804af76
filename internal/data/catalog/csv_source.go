package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"movie-reservation/internal/data/entity"
	"movie-reservation/pkg/utils"
)

// Column layouts accepted by the CSV source. The 9-column variant carries
// a date; the 8-column variant does not.
//
//	code, name, date, showtime, totalSeats, availableSeats, ticketPrice, language, genre
//	code, name,       showtime, totalSeats, availableSeats, ticketPrice, language, genre
const (
	columnsWithDate    = 9
	columnsWithoutDate = 8
)

type CSVSource struct {
	path string
	log  *zap.Logger
}

func NewCSVSource(path string, log *zap.Logger) *CSVSource {
	return &CSVSource{
		path: path,
		log:  log.With(zap.String("source", "csv")),
	}
}

// Load reads the catalog file, skipping one header row. Malformed rows
// are dropped with a warning so one bad line cannot take down the whole
// catalog. An unreadable file is the only fatal case.
func (s *CSVSource) Load(ctx context.Context) ([]entity.Movie, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // both column-count variants are valid
	reader.TrimLeadingSpace = true

	var (
		records []entity.Movie
		skipped int
		line    int
	)

	for {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			s.log.Warn("Skipping unparseable catalog row",
				zap.Int("line", line),
				zap.Error(err),
			)
			skipped++
			continue
		}
		if line == 1 {
			// header row
			continue
		}

		movie, err := parseRow(row)
		if err != nil {
			s.log.Warn("Skipping malformed catalog row",
				zap.Int("line", line),
				zap.Error(err),
			)
			skipped++
			continue
		}
		records = append(records, movie)
	}

	s.log.Info("Catalog file loaded",
		zap.String("path", s.path),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)

	return records, nil
}

func parseRow(row []string) (entity.Movie, error) {
	for i := range row {
		row[i] = strings.TrimSpace(row[i])
	}

	var movie entity.Movie
	switch len(row) {
	case columnsWithDate:
		movie.Code = row[0]
		movie.Name = row[1]
		movie.Date = row[2]
		movie.Showtime = entity.Showtime(row[3])
		row = row[4:]
	case columnsWithoutDate:
		movie.Code = row[0]
		movie.Name = row[1]
		movie.Showtime = entity.Showtime(row[2])
		row = row[3:]
	default:
		return entity.Movie{}, fmt.Errorf("expected %d or %d columns, got %d",
			columnsWithoutDate, columnsWithDate, len(row))
	}

	totalSeats, err := strconv.Atoi(row[0])
	if err != nil {
		return entity.Movie{}, fmt.Errorf("total seats %q: %w", row[0], err)
	}
	availableSeats, err := strconv.Atoi(row[1])
	if err != nil {
		return entity.Movie{}, fmt.Errorf("available seats %q: %w", row[1], err)
	}
	price, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return entity.Movie{}, fmt.Errorf("ticket price %q: %w", row[2], err)
	}

	movie.TotalSeats = totalSeats
	movie.AvailableSeats = availableSeats
	movie.TicketPrice = price
	movie.Language = row[3]
	movie.Genre = row[4]

	if errs := utils.ValidateStruct(&movie); len(errs) > 0 {
		return entity.Movie{}, fmt.Errorf("invalid record: %s", utils.FormatValidationErrors(errs))
	}

	return movie, nil
}
