package commands

import (
	"context"
	"fmt"

	"github.com/sosdefesa/admin/internal/model"
	"github.com/sosdefesa/admin/internal/viewmodel"
	"github.com/spf13/cobra"
)

// LogsCommand returns the audit log command.
func LogsCommand(app *App) *cobra.Command {
	var (
		search string
		action string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the audit log of create, update and delete actions",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			if err := requireAuth(ctx, app); err != nil {
				return err
			}

			vm := viewmodel.NewLogs(app.Client, app.Notifier, app.Config.Location())
			if err := vm.Load(ctx); err != nil {
				return err
			}

			vm.SetSearchText(search)
			vm.SetActionFilter(action)
			vm.SetDateFilter(date)

			entries := vm.Entries()
			if len(entries) == 0 {
				fmt.Println("Nenhum registro encontrado")
				return nil
			}

			loc := app.Config.Location()
			fmt.Printf("%-18s %-20s %-8s %s\n", "Data", "Usuário", "Ação", "Descrição")
			for _, entry := range entries {
				fmt.Printf("%-18s %-20s %-8s %s\n",
					entry.Timestamp.In(loc).Format("02/01/2006 15:04"),
					entry.ActorName,
					entry.Action,
					model.Truncate(entry.Description, 100))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring match on the actor name")
	cmd.Flags().StringVar(&action, "action", "", "filter by action (CREATE, UPDATE, DELETE)")
	cmd.Flags().StringVar(&date, "date", "", "filter by date (DD/MM/YYYY)")

	return cmd
}
