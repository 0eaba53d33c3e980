package filter

import (
	"testing"
	"time"

	"github.com/sosdefesa/admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logFixtures(loc *time.Location) []model.LogEntry {
	return []model.LogEntry{
		{ID: 1, ActorName: "Maria Silva", Action: model.ActionCreate,
			Timestamp: time.Date(2026, 5, 1, 9, 0, 0, 0, loc)},
		{ID: 2, ActorName: "João Souza", Action: model.ActionUpdate,
			Timestamp: time.Date(2026, 5, 1, 15, 0, 0, 0, loc)},
		{ID: 3, ActorName: "Maria Silva", Action: model.ActionDelete,
			Timestamp: time.Date(2026, 5, 2, 10, 0, 0, 0, loc)},
	}
}

func TestLogs_NoFilterReturnsAll(t *testing.T) {
	entries := logFixtures(time.UTC)
	assert.Equal(t, entries, Logs(entries, LogFilters{}, time.UTC))
}

func TestLogs_ActorSearchAndAction(t *testing.T) {
	entries := logFixtures(time.UTC)

	got := Logs(entries, LogFilters{SearchText: "maria", Action: model.ActionDelete}, time.UTC)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestLogs_DateFilter(t *testing.T) {
	entries := logFixtures(time.UTC)

	got := Logs(entries, LogFilters{Date: "01/05/2026"}, time.UTC)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestLogs_Idempotent(t *testing.T) {
	entries := logFixtures(time.UTC)
	filters := LogFilters{SearchText: "maria"}

	once := Logs(entries, filters, time.UTC)
	require.NotEmpty(t, once)
	assert.Equal(t, once, Logs(once, filters, time.UTC))
}

func TestLogDates_DistinctFirstSeenOrder(t *testing.T) {
	entries := logFixtures(time.UTC)
	assert.Equal(t, []string{"01/05/2026", "02/05/2026"}, LogDates(entries, time.UTC))
}
