package filter

import (
	"testing"
	"time"

	"github.com/sosdefesa/admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occurrenceFixtures(t *testing.T, loc *time.Location) []model.Occurrence {
	t.Helper()
	return []model.Occurrence{
		{ID: 1, Type: "alagamentos", Neighborhood: "Centro", AuthorUsername: "maria", AttachmentCount: 2,
			CreatedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, loc)},
		{ID: 2, Type: "deslizamentos", Neighborhood: "Jatiúca", AuthorUsername: "joao", AttachmentCount: 0,
			CreatedAt: time.Date(2026, 3, 10, 22, 30, 0, 0, loc)},
		{ID: 3, Type: "alagamentos", Neighborhood: "Ponta Verde", AuthorUsername: "maria", AttachmentCount: 0,
			CreatedAt: time.Date(2026, 3, 11, 9, 0, 0, 0, loc)},
		{ID: 4, Type: "enxurradas", Neighborhood: "Centro", AuthorUsername: "ana", AttachmentCount: 1,
			CreatedAt: time.Date(2026, 3, 12, 14, 0, 0, 0, loc)},
	}
}

func TestOccurrences_NoFilterReturnsAll(t *testing.T) {
	loc := time.UTC
	items := occurrenceFixtures(t, loc)

	got := Occurrences(items, OccurrenceFilters{}, loc)
	assert.Equal(t, items, got)
}

func TestOccurrences_PreservesOrder(t *testing.T) {
	loc := time.UTC
	items := occurrenceFixtures(t, loc)

	got := Occurrences(items, OccurrenceFilters{Type: "alagamentos"}, loc)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestOccurrences_SearchIsCaseInsensitive(t *testing.T) {
	loc := time.UTC
	items := occurrenceFixtures(t, loc)

	got := Occurrences(items, OccurrenceFilters{SearchText: "centro"}, loc)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)
}

func TestOccurrences_FiltersCompose(t *testing.T) {
	loc := time.UTC
	items := occurrenceFixtures(t, loc)

	got := Occurrences(items, OccurrenceFilters{
		Type:   "alagamentos",
		Author: "maria",
		Date:   "10/03/2026",
	}, loc)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestOccurrences_AttachmentFilter(t *testing.T) {
	loc := time.UTC
	items := occurrenceFixtures(t, loc)

	with := Occurrences(items, OccurrenceFilters{Attachment: "true"}, loc)
	require.Len(t, with, 2)
	assert.Equal(t, int64(1), with[0].ID)
	assert.Equal(t, int64(4), with[1].ID)

	without := Occurrences(items, OccurrenceFilters{Attachment: "false"}, loc)
	require.Len(t, without, 2)
	assert.Equal(t, int64(2), without[0].ID)
	assert.Equal(t, int64(3), without[1].ID)
}

func TestOccurrences_DateComparesCalendarDayInLocation(t *testing.T) {
	// 2026-03-10 23:30 UTC is already 2026-03-10 20:30 in Maceió, but
	// 2026-03-11 01:00 UTC is still 2026-03-10 locally.
	loc, err := time.LoadLocation("America/Maceio")
	require.NoError(t, err)

	items := []model.Occurrence{
		{ID: 1, CreatedAt: time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC)},
		{ID: 2, CreatedAt: time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)},
	}

	got := Occurrences(items, OccurrenceFilters{Date: "10/03/2026"}, loc)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestOccurrences_Idempotent(t *testing.T) {
	loc := time.UTC
	items := occurrenceFixtures(t, loc)
	filters := OccurrenceFilters{SearchText: "centro", Attachment: "true"}

	once := Occurrences(items, filters, loc)
	require.NotEmpty(t, once)
	assert.Equal(t, once, Occurrences(once, filters, loc))
}

func TestOccurrences_DoesNotMutateInput(t *testing.T) {
	loc := time.UTC
	items := occurrenceFixtures(t, loc)
	before := make([]model.Occurrence, len(items))
	copy(before, items)

	Occurrences(items, OccurrenceFilters{Author: "joao"}, loc)
	assert.Equal(t, before, items)
}

func TestAuthors_DistinctFirstSeenOrder(t *testing.T) {
	items := occurrenceFixtures(t, time.UTC)
	assert.Equal(t, []string{"maria", "joao", "ana"}, Authors(items))
}

func TestDates_DistinctFirstSeenOrder(t *testing.T) {
	items := occurrenceFixtures(t, time.UTC)
	assert.Equal(t, []string{"10/03/2026", "11/03/2026", "12/03/2026"}, Dates(items, time.UTC))
}

func TestActive(t *testing.T) {
	assert.False(t, OccurrenceFilters{}.Active())
	assert.True(t, OccurrenceFilters{SearchText: "a"}.Active())
	assert.True(t, OccurrenceFilters{Attachment: "false"}.Active())
}
