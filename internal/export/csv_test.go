package export

import (
	"strings"
	"testing"
	"time"

	"github.com/sosdefesa/admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccurrencesCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	got := OccurrencesCSV(nil, time.UTC)
	assert.Equal(t, "Tipo,Localização,Latitude,Longitude,Criado em,Curtidas,Anexo", got)
}

func TestOccurrencesCSV_OneLinePerOccurrence(t *testing.T) {
	items := []model.Occurrence{
		{Type: "alagamentos", Neighborhood: "Centro", Latitude: -9.66, Longitude: -35.73,
			CreatedAt: time.Date(2026, 3, 10, 8, 30, 15, 0, time.UTC), LikeCount: 4, AttachmentCount: 2},
		{Type: "enxurradas", Neighborhood: "Farol", Latitude: -9.64, Longitude: -35.74,
			CreatedAt: time.Date(2026, 3, 11, 19, 0, 0, 0, time.UTC), LikeCount: 0},
	}

	lines := strings.Split(OccurrencesCSV(items, time.UTC), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Alagamentos,Centro,-9.66,-35.73,10/03/2026 08:30:15,4,Sim", lines[1])
	assert.Equal(t, "Enxurradas,Farol,-9.64,-35.74,11/03/2026 19:00:00,0,Não", lines[2])
}

func TestOccurrencesCSV_FixedColumnCount(t *testing.T) {
	items := []model.Occurrence{
		{Type: "alagamentos", Neighborhood: "Jatiúca", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	lines := strings.Split(OccurrencesCSV(items, time.UTC), "\n")
	for _, line := range lines {
		assert.Len(t, strings.Split(line, ","), 7)
	}
}

func TestOccurrencesCSV_CommaInFieldCorruptsRow(t *testing.T) {
	// Known limitation: values are comma-joined without quoting, so a comma
	// inside a field shifts every later column of that row.
	items := []model.Occurrence{
		{Type: "alagamentos", Neighborhood: "Centro, Zona Sul",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	lines := strings.Split(OccurrencesCSV(items, time.UTC), "\n")
	assert.Len(t, strings.Split(lines[1], ","), 8)
}

func TestOccurrencesCSV_TimestampsUseLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Maceio")
	require.NoError(t, err)

	items := []model.Occurrence{
		{Type: "enxurradas", Neighborhood: "Farol",
			CreatedAt: time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)},
	}

	got := OccurrencesCSV(items, loc)
	assert.Contains(t, got, "10/03/2026 22:00:00")
}
