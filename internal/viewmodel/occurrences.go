package viewmodel

import (
	"context"
	"fmt"
	"time"

	"github.com/sosdefesa/admin/internal/apperr"
	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/export"
	"github.com/sosdefesa/admin/internal/filter"
	"github.com/sosdefesa/admin/internal/model"
	"github.com/sosdefesa/admin/internal/pagination"
)

// OccurrenceListViewModel backs the paginated occurrence table with its four
// filter dimensions plus free-text search. The base collection is the
// server page; filters narrow it client-side, and pagination is suppressed
// while any filter is active.
type OccurrenceListViewModel struct {
	screen

	client   *client.Client
	notifier Notifier
	location *time.Location

	pager   *pagination.Controller
	base    []model.Occurrence
	view    []model.Occurrence
	filters filter.OccurrenceFilters
	authors []string
	dates   []string
}

func NewOccurrenceList(c *client.Client, n Notifier, loc *time.Location, pageSize int) *OccurrenceListViewModel {
	return &OccurrenceListViewModel{
		client:   c,
		notifier: n,
		location: loc,
		pager:    pagination.New(pageSize),
	}
}

// Load fetches the current page and re-derives the filter options and the
// filtered view.
func (vm *OccurrenceListViewModel) Load(ctx context.Context) error {
	page, err := vm.client.ListOccurrences(ctx, vm.pager.PageSize(), vm.pager.Offset())
	if err != nil {
		vm.notifier.Error("Erro ao buscar ocorrências")
		return err
	}

	vm.apply(func() {
		vm.base = page.Results
		vm.pager.SetTotal(page.Count)
		vm.authors = filter.Authors(vm.base)
		vm.dates = filter.Dates(vm.base, vm.location)
		vm.recompute()
	})
	return nil
}

// recompute re-derives the filtered view. Callers hold the screen lock.
func (vm *OccurrenceListViewModel) recompute() {
	vm.view = filter.Occurrences(vm.base, vm.filters, vm.location)
}

func (vm *OccurrenceListViewModel) SetSearchText(text string) {
	vm.apply(func() { vm.filters.SearchText = text; vm.recompute() })
}

func (vm *OccurrenceListViewModel) SetTypeFilter(typ string) {
	vm.apply(func() { vm.filters.Type = typ; vm.recompute() })
}

func (vm *OccurrenceListViewModel) SetDateFilter(date string) {
	vm.apply(func() { vm.filters.Date = date; vm.recompute() })
}

func (vm *OccurrenceListViewModel) SetAuthorFilter(author string) {
	vm.apply(func() { vm.filters.Author = author; vm.recompute() })
}

func (vm *OccurrenceListViewModel) SetAttachmentFilter(value string) {
	vm.apply(func() { vm.filters.Attachment = value; vm.recompute() })
}

// Occurrences returns the filtered view in the base collection's order.
func (vm *OccurrenceListViewModel) Occurrences() []model.Occurrence {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.view
}

// AuthorOptions are the distinct authors of the unfiltered page.
func (vm *OccurrenceListViewModel) AuthorOptions() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.authors
}

// DateOptions are the distinct calendar dates of the unfiltered page.
func (vm *OccurrenceListViewModel) DateOptions() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.dates
}

// PaginationVisible reports whether the page controls should be rendered.
func (vm *OccurrenceListViewModel) PaginationVisible() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pager.Visible(vm.filters.Active())
}

func (vm *OccurrenceListViewModel) Page() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pager.Page()
}

func (vm *OccurrenceListViewModel) TotalPages() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pager.TotalPages()
}

// NextPage advances one page (clamped) and reloads.
func (vm *OccurrenceListViewModel) NextPage(ctx context.Context) error {
	vm.apply(func() { vm.pager.Next() })
	return vm.Load(ctx)
}

// PreviousPage goes back one page (clamped) and reloads.
func (vm *OccurrenceListViewModel) PreviousPage(ctx context.Context) error {
	vm.apply(func() { vm.pager.Previous() })
	return vm.Load(ctx)
}

// Finalize requests the terminal transition for a listed occurrence. The
// listing does not carry feedback histories, so the guard falls back to the
// server-reported status of the row.
func (vm *OccurrenceListViewModel) Finalize(ctx context.Context, id int64) error {
	var status model.Status
	vm.apply(func() {
		for _, oc := range vm.base {
			if oc.ID == id {
				status = oc.Status
				break
			}
		}
	})
	if status == model.StatusFinished {
		vm.notifier.Error("Erro ao finalizar ocorrência")
		return fmt.Errorf("%w: occurrence %d is already finished", apperr.ErrInvalidTransition, id)
	}

	if err := vm.client.FinalizeOccurrence(ctx, id); err != nil {
		vm.notifier.Error("Erro ao finalizar ocorrência")
		return err
	}
	vm.notifier.Success("Ocorrência finalizada com sucesso!")
	return vm.Load(ctx)
}

// Delete removes an occurrence; always legal regardless of state. The
// backend cascades to feedback and media.
func (vm *OccurrenceListViewModel) Delete(ctx context.Context, id int64) error {
	if err := vm.client.DeleteOccurrence(ctx, id); err != nil {
		vm.notifier.Error("Erro ao deletar ocorrência")
		return err
	}

	vm.apply(func() {
		kept := vm.base[:0]
		for _, oc := range vm.base {
			if oc.ID != id {
				kept = append(kept, oc)
			}
		}
		vm.base = kept
		vm.recompute()
	})
	vm.notifier.Success("Ocorrência deletada com sucesso!")
	return nil
}

// ExportCSV fetches the full unfiltered set in one request and renders it as
// CSV. Filters do not apply to the export.
func (vm *OccurrenceListViewModel) ExportCSV(ctx context.Context) (string, error) {
	limit := vm.pager.Total()
	if limit == 0 {
		limit = vm.pager.PageSize()
	}

	page, err := vm.client.ListOccurrences(ctx, limit, 0)
	if err != nil {
		vm.notifier.Error("Erro ao exportar CSV")
		return "", err
	}

	doc := export.OccurrencesCSV(page.Results, vm.location)
	vm.notifier.Success("CSV exportado com sucesso!")
	return doc, nil
}
