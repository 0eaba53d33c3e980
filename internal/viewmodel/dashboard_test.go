package viewmodel

import (
	"context"
	"net/http"
	"testing"

	"github.com/sosdefesa/admin/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/dashboard/sessions-card", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"total":120,"today":8,"yesterdayPercent":14.3,"lastWeekPercent":-2.0}`))
	})
	mux.HandleFunc("/api/dashboard/ocorrencias-card", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"total":40,"today":3,"yesterdayPercent":50,"lastWeekPercent":10}`))
	})
	mux.HandleFunc("/api/dashboard/curtidas-card", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"total":200,"today":12,"yesterdayPercent":0,"lastWeekPercent":5}`))
	})
	mux.HandleFunc("/api/dashboard/pie-chart", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[{"tipo":"alagamentos","count":9},{"tipo":"deslizamentos","count":4}]}`))
	})
	mux.HandleFunc("/api/dashboard/monthly-chart", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[
			{"tipo":"alagamentos","year":2026,"month":2,"count":5},
			{"tipo":"alagamentos","year":2026,"month":3,"count":4},
			{"tipo":"deslizamentos","year":2026,"month":3,"count":4}
		]}`))
	})
	return mux
}

func TestDashboard_LoadBuildsChartSeries(t *testing.T) {
	c, _ := newBackend(t, dashboardMux())

	vm := NewDashboard(c, &recorder{})
	require.NoError(t, vm.Load(context.Background()))

	sessions, occurrences, likes, ok := vm.Cards()
	require.True(t, ok)
	assert.Equal(t, 120, sessions.Total)
	assert.Equal(t, 40, occurrences.Total)
	assert.Equal(t, 200, likes.Total)
	assert.Equal(t, 14.3, sessions.YesterdayPercent)

	pie := vm.Pie()
	require.Len(t, pie, 2)
	assert.Equal(t, PieSlice{Label: "Alagamentos", Count: 9}, pie[0])
	assert.Equal(t, PieSlice{Label: "Deslizamentos", Count: 4}, pie[1])

	labels, series := vm.Monthly()
	assert.Equal(t, []string{"Fevereiro/2026", "Março/2026"}, labels)
	require.Len(t, series, 2)
	assert.Equal(t, MonthlySeries{Label: "Alagamentos", Counts: []int{5, 4}}, series[0])
	// Missing months are zero-filled so every series aligns to the labels.
	assert.Equal(t, MonthlySeries{Label: "Deslizamentos", Counts: []int{0, 4}}, series[1])
}

func TestDashboard_AnyFailureFailsTheWholeLoad(t *testing.T) {
	mux := dashboardMux()
	// Replace one endpoint with a failure.
	mux2 := http.NewServeMux()
	mux2.HandleFunc("/api/dashboard/monthly-chart", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux2.Handle("/", mux)

	c, _ := newBackend(t, mux2)
	notes := &recorder{}

	vm := NewDashboard(c, notes)
	require.Error(t, vm.Load(context.Background()))

	_, _, _, ok := vm.Cards()
	assert.False(t, ok, "partial results are not applied")
	assert.Equal(t, []string{"Erro ao carregar dados do dashboard"}, notes.Errors())
}

func TestDashboard_LoadAdminsKeepsOnlyAdmins(t *testing.T) {
	mux := dashboardMux()
	mux.HandleFunc("/api", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[
			{"id":1,"name":"Maria","admin":true},
			{"id":2,"name":"João","admin":false},
			{"id":3,"name":"Ana","admin":true}
		]`))
	})
	c, _ := newBackend(t, mux)

	vm := NewDashboard(c, &recorder{})
	require.NoError(t, vm.LoadAdmins(context.Background()))

	admins := vm.Admins()
	require.Len(t, admins, 2)
	assert.Equal(t, "Maria", admins[0].Name)
	assert.Equal(t, "Ana", admins[1].Name)
}

func TestBuildMonthly_Empty(t *testing.T) {
	labels, series := buildMonthly(nil)
	assert.Empty(t, labels)
	assert.Empty(t, series)
}

func TestBuildPie_UnknownTypeFallsBackToKey(t *testing.T) {
	pie := buildPie([]client.TypeCount{{Type: "desconhecido", Count: 1}})
	require.Len(t, pie, 1)
	assert.Equal(t, "desconhecido", pie[0].Label)
}
