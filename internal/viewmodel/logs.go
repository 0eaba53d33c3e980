package viewmodel

import (
	"context"
	"time"

	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/filter"
	"github.com/sosdefesa/admin/internal/model"
)

// LogsViewModel backs the audit log screen.
type LogsViewModel struct {
	screen

	client   *client.Client
	notifier Notifier
	location *time.Location

	base    []model.LogEntry
	view    []model.LogEntry
	filters filter.LogFilters
}

func NewLogs(c *client.Client, n Notifier, loc *time.Location) *LogsViewModel {
	return &LogsViewModel{client: c, notifier: n, location: loc}
}

// Load fetches the audit log.
func (vm *LogsViewModel) Load(ctx context.Context) error {
	entries, err := vm.client.ListLogs(ctx)
	if err != nil {
		vm.notifier.Error("Erro ao buscar logs")
		return err
	}

	vm.apply(func() {
		vm.base = entries
		vm.recompute()
	})
	return nil
}

func (vm *LogsViewModel) recompute() {
	vm.view = filter.Logs(vm.base, vm.filters, vm.location)
}

func (vm *LogsViewModel) SetSearchText(text string) {
	vm.apply(func() { vm.filters.SearchText = text; vm.recompute() })
}

func (vm *LogsViewModel) SetActionFilter(action string) {
	vm.apply(func() { vm.filters.Action = action; vm.recompute() })
}

func (vm *LogsViewModel) SetDateFilter(date string) {
	vm.apply(func() { vm.filters.Date = date; vm.recompute() })
}

// Entries returns the filtered log in original order.
func (vm *LogsViewModel) Entries() []model.LogEntry {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.view
}

// DateOptions are the distinct calendar dates of the unfiltered log.
func (vm *LogsViewModel) DateOptions() []string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return filter.LogDates(vm.base, vm.location)
}
