package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/model"
)

// PieSlice is one labeled slice of the type-distribution chart.
type PieSlice struct {
	Label string
	Count int
}

// MonthlySeries is one disaster type's counts aligned to the month labels.
type MonthlySeries struct {
	Label  string
	Counts []int
}

// DashboardViewModel combines the five summary fetches into chart-ready
// series. The five requests are issued concurrently and awaited jointly; if
// any one fails the whole view fails with a single notification.
type DashboardViewModel struct {
	screen

	client   *client.Client
	notifier Notifier

	sessions    client.CardSummary
	occurrences client.CardSummary
	likes       client.CardSummary
	pie         []PieSlice
	monthLabels []string
	monthly     []MonthlySeries
	admins      []model.User
	loaded      bool
}

func NewDashboard(c *client.Client, n Notifier) *DashboardViewModel {
	return &DashboardViewModel{client: c, notifier: n}
}

// Load issues the five summary fetches concurrently. Ordering between them
// is irrelevant; partial failure is not distinguished.
func (vm *DashboardViewModel) Load(ctx context.Context) error {
	var (
		sessions, occurrences, likes client.CardSummary
		pie                          []client.TypeCount
		monthly                      []client.MonthlyCount
	)

	fetches := []func() error{
		func() (err error) { sessions, err = vm.client.SessionsCard(ctx); return },
		func() (err error) { occurrences, err = vm.client.OccurrencesCard(ctx); return },
		func() (err error) { likes, err = vm.client.LikesCard(ctx); return },
		func() (err error) { pie, err = vm.client.PieChart(ctx); return },
		func() (err error) { monthly, err = vm.client.MonthlyChart(ctx); return },
	}

	errs := make([]error, len(fetches))
	var wg sync.WaitGroup
	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func() error) {
			defer wg.Done()
			errs[i] = fetch()
		}(i, fetch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			vm.notifier.Error("Erro ao carregar dados do dashboard")
			return err
		}
	}

	vm.apply(func() {
		vm.sessions = sessions
		vm.occurrences = occurrences
		vm.likes = likes
		vm.pie = buildPie(pie)
		vm.monthLabels, vm.monthly = buildMonthly(monthly)
		vm.loaded = true
	})
	return nil
}

// LoadAdmins fetches the user roster and keeps the admins. Independent of
// the summary fetches; its failure does not fail the dashboard.
func (vm *DashboardViewModel) LoadAdmins(ctx context.Context) error {
	users, err := vm.client.ListUsers(ctx)
	if err != nil {
		return err
	}

	admins := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Admin {
			admins = append(admins, u)
		}
	}
	vm.apply(func() { vm.admins = admins })
	return nil
}

// buildPie resolves category keys through the display-name catalogue,
// keeping the response order.
func buildPie(items []client.TypeCount) []PieSlice {
	slices := make([]PieSlice, 0, len(items))
	for _, item := range items {
		slices = append(slices, PieSlice{Label: model.TypeName(item.Type), Count: item.Count})
	}
	return slices
}

// buildMonthly groups the buckets by (year, month) into display-ordered
// labels and one aligned series per disaster type, both in first-seen order.
func buildMonthly(items []client.MonthlyCount) ([]string, []MonthlySeries) {
	labels := make([]string, 0)
	counts := make(map[string]map[string]int)
	typeOrder := make([]string, 0)
	seenType := make(map[string]bool)

	for _, item := range items {
		label := fmt.Sprintf("%s/%d", model.MonthNames[item.Month], item.Year)
		if _, ok := counts[label]; !ok {
			counts[label] = make(map[string]int)
			labels = append(labels, label)
		}
		name := model.TypeName(item.Type)
		counts[label][name] = item.Count
		if !seenType[name] {
			seenType[name] = true
			typeOrder = append(typeOrder, name)
		}
	}

	series := make([]MonthlySeries, 0, len(typeOrder))
	for _, name := range typeOrder {
		aligned := make([]int, len(labels))
		for i, label := range labels {
			aligned[i] = counts[label][name]
		}
		series = append(series, MonthlySeries{Label: name, Counts: aligned})
	}
	return labels, series
}

// Cards returns the three summary cards once loaded.
func (vm *DashboardViewModel) Cards() (sessions, occurrences, likes client.CardSummary, ok bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.sessions, vm.occurrences, vm.likes, vm.loaded
}

// Pie returns the type-distribution series.
func (vm *DashboardViewModel) Pie() []PieSlice {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pie
}

// Monthly returns the month labels and the per-type aligned series.
func (vm *DashboardViewModel) Monthly() ([]string, []MonthlySeries) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.monthLabels, vm.monthly
}

// Admins returns the admin roster.
func (vm *DashboardViewModel) Admins() []model.User {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.admins
}
