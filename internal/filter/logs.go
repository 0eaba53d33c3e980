package filter

import (
	"strings"
	"time"

	"github.com/sosdefesa/admin/internal/model"
)

// LogFilters mirrors the occurrence filters for the audit log screen.
type LogFilters struct {
	SearchText string // case-insensitive substring of the actor name
	Action     string // exact audit action (CREATE, UPDATE, DELETE)
	Date       string // calendar date in DateKeyLayout
}

func (f LogFilters) Active() bool {
	return f.SearchText != "" || f.Action != "" || f.Date != ""
}

// Logs returns the subsequence of entries satisfying every active predicate.
func Logs(entries []model.LogEntry, f LogFilters, loc *time.Location) []model.LogEntry {
	if !f.Active() {
		return entries
	}

	search := strings.ToLower(f.SearchText)
	result := make([]model.LogEntry, 0, len(entries))
	for _, entry := range entries {
		if search != "" && !strings.Contains(strings.ToLower(entry.ActorName), search) {
			continue
		}
		if f.Action != "" && entry.Action != f.Action {
			continue
		}
		if f.Date != "" && entry.Timestamp.In(loc).Format(DateKeyLayout) != f.Date {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// LogDates returns the distinct calendar-date keys of the base entries, in
// first-seen order.
func LogDates(entries []model.LogEntry, loc *time.Location) []string {
	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, entry := range entries {
		key := entry.Timestamp.In(loc).Format(DateKeyLayout)
		if !seen[key] {
			seen[key] = true
			dates = append(dates, key)
		}
	}
	return dates
}
