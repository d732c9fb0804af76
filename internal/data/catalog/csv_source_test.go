package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movie-reservation/internal/data/entity"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVSource_NineColumnVariant(t *testing.T) {
	path := writeCatalogFile(t,
		"code,name,date,showtime,total_seats,available_seats,ticket_price,language,genre\n"+
			"M1,Sci-Fi Epic,2026-09-01,Evening,100,5,12.50,English,Sci-Fi\n")

	records, err := NewCSVSource(path, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	m := records[0]
	assert.Equal(t, "M1", m.Code)
	assert.Equal(t, "Sci-Fi Epic", m.Name)
	assert.Equal(t, "2026-09-01", m.Date)
	assert.Equal(t, entity.ShowtimeEvening, m.Showtime)
	assert.Equal(t, 100, m.TotalSeats)
	assert.Equal(t, 5, m.AvailableSeats)
	assert.Equal(t, 12.50, m.TicketPrice)
	assert.Equal(t, "English", m.Language)
	assert.Equal(t, "Sci-Fi", m.Genre)
}

func TestCSVSource_EightColumnVariantHasNoDate(t *testing.T) {
	path := writeCatalogFile(t,
		"code,name,showtime,total_seats,available_seats,ticket_price,language,genre\n"+
			"M2,Midnight Heist,Morning,80,42,10.00,English,Thriller\n")

	records, err := NewCSVSource(path, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Date)
	assert.Equal(t, entity.ShowtimeMorning, records[0].Showtime)
}

func TestCSVSource_SkipsMalformedRows(t *testing.T) {
	path := writeCatalogFile(t,
		"code,name,date,showtime,total_seats,available_seats,ticket_price,language,genre\n"+
			"M1,Sci-Fi Epic,2026-09-01,Evening,100,5,12.50,English,Sci-Fi\n"+
			"M2,Broken Row,2026-09-01,Evening,not-a-number,5,12.50,English,Drama\n"+
			"M3,Too Few Columns,Evening\n"+
			"M4,Oversold,2026-09-01,Evening,10,25,5.00,English,Drama\n"+
			"M5,Garden of Whispers,2026-09-04,Evening,45,45,14.00,Japanese,Animation\n")

	records, err := NewCSVSource(path, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)

	// Only the two well-formed rows survive: the non-numeric seat count,
	// the short row and the available>total row are all dropped.
	require.Len(t, records, 2)
	assert.Equal(t, "M1", records[0].Code)
	assert.Equal(t, "M5", records[1].Code)
}

func TestCSVSource_TrimsFieldWhitespace(t *testing.T) {
	path := writeCatalogFile(t,
		"code,name,date,showtime,total_seats,available_seats,ticket_price,language,genre\n"+
			" M1 , Sci-Fi Epic , 2026-09-01 , Evening , 100 , 5 , 12.50 , English , Sci-Fi \n")

	records, err := NewCSVSource(path, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "M1", records[0].Code)
	assert.Equal(t, "Sci-Fi Epic", records[0].Name)
}

func TestCSVSource_UnreadableFileFails(t *testing.T) {
	records, err := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv"), zap.NewNop()).
		Load(context.Background())
	assert.Error(t, err)
	assert.Empty(t, records)
}

func TestCSVSource_HeaderOnlyFileYieldsEmptyCatalog(t *testing.T) {
	path := writeCatalogFile(t,
		"code,name,date,showtime,total_seats,available_seats,ticket_price,language,genre\n")

	records, err := NewCSVSource(path, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
