// Package filter applies client-side predicate filters to in-memory
// collections. Filtering is pure and stable: the input order is preserved,
// nothing is mutated, and the functions are cheap enough to re-run on every
// keystroke.
package filter

import (
	"strings"
	"time"

	"github.com/sosdefesa/admin/internal/model"
)

// DateKeyLayout is the calendar-date key used for both the selectable date
// options and the date predicate. The same layout and location must be used
// on both sides of the comparison.
const DateKeyLayout = "02/01/2006"

// OccurrenceFilters is one value per filter dimension. An empty string means
// no constraint on that dimension.
type OccurrenceFilters struct {
	SearchText string // case-insensitive substring of the neighborhood
	Type       string // exact category key
	Date       string // calendar date in DateKeyLayout
	Author     string // exact username
	Attachment string // "true" requires attachments, "false" requires none
}

// Active reports whether any dimension is constrained.
func (f OccurrenceFilters) Active() bool {
	return f.SearchText != "" || f.Type != "" || f.Date != "" || f.Author != "" || f.Attachment != ""
}

// Occurrences returns the subsequence of items satisfying every active
// predicate in f. Calendar dates are compared in loc.
func Occurrences(items []model.Occurrence, f OccurrenceFilters, loc *time.Location) []model.Occurrence {
	if !f.Active() {
		return items
	}

	search := strings.ToLower(f.SearchText)
	result := make([]model.Occurrence, 0, len(items))
	for _, oc := range items {
		if search != "" && !strings.Contains(strings.ToLower(oc.Neighborhood), search) {
			continue
		}
		if f.Type != "" && oc.Type != f.Type {
			continue
		}
		if f.Date != "" && oc.CreatedAt.In(loc).Format(DateKeyLayout) != f.Date {
			continue
		}
		if f.Author != "" && oc.AuthorUsername != f.Author {
			continue
		}
		if f.Attachment == "true" && oc.AttachmentCount == 0 {
			continue
		}
		if f.Attachment == "false" && oc.AttachmentCount > 0 {
			continue
		}
		result = append(result, oc)
	}
	return result
}

// Authors returns the distinct author usernames of the unfiltered base
// collection, in first-seen order. Options are derived from the base so the
// user can pivot across dimensions without narrowing the available choices.
func Authors(items []model.Occurrence) []string {
	seen := make(map[string]bool)
	authors := make([]string, 0)
	for _, oc := range items {
		if !seen[oc.AuthorUsername] {
			seen[oc.AuthorUsername] = true
			authors = append(authors, oc.AuthorUsername)
		}
	}
	return authors
}

// Dates returns the distinct calendar-date keys of the unfiltered base
// collection, in first-seen order, formatted in loc.
func Dates(items []model.Occurrence, loc *time.Location) []string {
	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, oc := range items {
		key := oc.CreatedAt.In(loc).Format(DateKeyLayout)
		if !seen[key] {
			seen[key] = true
			dates = append(dates, key)
		}
	}
	return dates
}
