package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/viewmodel"
	"github.com/spf13/cobra"
)

// DashboardCommand returns the dashboard summary command.
func DashboardCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the summary cards, charts and admin roster",
		RunE:  runDashboard(app),
	}
}

func runDashboard(app *App) func(cmd *cobra.Command, args []string) error {
	return func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx, app); err != nil {
			return err
		}

		vm := viewmodel.NewDashboard(app.Client, app.Notifier)
		if err := vm.Load(ctx); err != nil {
			return err
		}

		sessions, occurrences, likes, ok := vm.Cards()
		if !ok {
			return fmt.Errorf("dashboard data unavailable")
		}

		printCard("Acessos", sessions)
		printCard("Ocorrências", occurrences)
		printCard("Curtidas", likes)

		fmt.Println("\nOcorrências por tipo:")
		for _, slice := range vm.Pie() {
			fmt.Printf("  %-30s %d\n", slice.Label, slice.Count)
		}

		labels, series := vm.Monthly()
		if len(labels) > 0 {
			fmt.Printf("\nMensal (%s):\n", strings.Join(labels, ", "))
			for _, s := range series {
				counts := make([]string, len(s.Counts))
				for i, c := range s.Counts {
					counts[i] = fmt.Sprintf("%d", c)
				}
				fmt.Printf("  %-30s %s\n", s.Label, strings.Join(counts, " "))
			}
		}

		// The roster is loaded separately; a failure here does not void the
		// rest of the dashboard.
		if err := vm.LoadAdmins(ctx); err == nil {
			fmt.Println("\nAdministradores:")
			for _, admin := range vm.Admins() {
				fmt.Printf("  %s\n", admin.Name)
			}
		}
		return nil
	}
}

func printCard(title string, card client.CardSummary) {
	fmt.Printf("%-12s total=%d hoje=%d ontem=%+.1f%% semana=%+.1f%%\n",
		title, card.Total, card.Today, card.YesterdayPercent, card.LastWeekPercent)
}
