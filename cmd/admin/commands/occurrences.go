package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/model"
	"github.com/sosdefesa/admin/internal/viewmodel"
	"github.com/spf13/cobra"
)

// OccurrenceCommands returns the occurrence management command tree.
func OccurrenceCommands(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "occurrences",
		Short: "List, inspect and manage occurrence records",
	}

	cmd.AddCommand(listOccurrencesCmd(app))
	cmd.AddCommand(showOccurrenceCmd(app))
	cmd.AddCommand(registerOccurrenceCmd(app))
	cmd.AddCommand(statusOccurrenceCmd(app))
	cmd.AddCommand(finalizeOccurrenceCmd(app))
	cmd.AddCommand(deleteOccurrenceCmd(app))
	cmd.AddCommand(exportOccurrencesCmd(app))

	return cmd
}

func listOccurrencesCmd(app *App) *cobra.Command {
	var (
		search     string
		typeFilter string
		dateFilter string
		author     string
		attachment string
		page       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List occurrences with optional filters",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			if err := requireAuth(ctx, app); err != nil {
				return err
			}

			vm := viewmodel.NewOccurrenceList(app.Client, app.Notifier, app.Config.Location(), app.Config.PageSize)
			if err := vm.Load(ctx); err != nil {
				return err
			}
			for page > vm.Page() && vm.Page() < vm.TotalPages() {
				if err := vm.NextPage(ctx); err != nil {
					return err
				}
			}

			vm.SetSearchText(search)
			vm.SetTypeFilter(typeFilter)
			vm.SetDateFilter(dateFilter)
			vm.SetAuthorFilter(author)
			vm.SetAttachmentFilter(attachment)

			rows := vm.Occurrences()
			if len(rows) == 0 {
				fmt.Println("Nenhuma ocorrência encontrada")
				return nil
			}

			fmt.Printf("%-6s %-28s %-24s %-20s %-12s %-8s %-8s\n",
				"ID", "Tipo", "Bairro", "Autor", "Registro", "Anexos", "Status")
			for _, oc := range rows {
				fmt.Printf("%-6d %-28s %-24s %-20s %-12s %-8d %-8s\n",
					oc.ID,
					model.TypeName(oc.Type),
					model.Truncate(oc.Neighborhood, 20),
					oc.AuthorUsername,
					oc.CreatedAt.In(app.Config.Location()).Format("02/01/2006"),
					oc.AttachmentCount,
					oc.Status)
			}

			if vm.PaginationVisible() {
				fmt.Printf("\nPágina %d de %d\n", vm.Page(), vm.TotalPages())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring match on the neighborhood")
	cmd.Flags().StringVar(&typeFilter, "type", "", "filter by type key (ex.: alagamentos)")
	cmd.Flags().StringVar(&dateFilter, "date", "", "filter by registration date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&author, "author", "", "filter by author username")
	cmd.Flags().StringVar(&attachment, "attachment", "", "filter by attachment presence (true/false)")
	cmd.Flags().IntVar(&page, "page", 1, "page to show when no filter is active")

	return cmd
}

func showOccurrenceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one occurrence with its feedback history",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireAuth(ctx, app); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid occurrence id %q", args[0])
			}

			nav := &Navigator{}
			vm := viewmodel.NewOccurrenceDetail(app.Client, app.Session, app.Notifier, nav, id)
			if err := vm.Load(ctx); err != nil {
				return err
			}

			detail, ok := vm.Detail()
			if !ok {
				return fmt.Errorf("occurrence %d unavailable", id)
			}

			loc := app.Config.Location()
			fmt.Printf("Ocorrência #%d\n", detail.ID)
			fmt.Printf("  Tipo:        %s\n", model.TypeName(detail.Type))
			fmt.Printf("  Bairro:      %s\n", detail.Neighborhood)
			fmt.Printf("  Coordenadas: %g, %g\n", detail.Latitude, detail.Longitude)
			fmt.Printf("  Descrição:   %s\n", detail.Description)
			fmt.Printf("  Registro:    %s\n", detail.CreatedAt.In(loc).Format("02/01/2006 15:04"))
			fmt.Printf("  Atualização: %s\n", detail.LastUpdatedAt.In(loc).Format("02/01/2006 15:04"))
			fmt.Printf("  Curtidas:    %d\n", detail.LikeCount)
			fmt.Printf("  Status:      %s\n", model.StatusNames[vm.Status()])

			if len(detail.Media) > 0 {
				fmt.Println("  Mídias:")
				for _, m := range detail.Media {
					fmt.Printf("    %s\n", m)
				}
			}
			if len(detail.Feedbacks) > 0 {
				fmt.Println("  Histórico:")
				for _, fb := range detail.Feedbacks {
					fmt.Printf("    %s  %s\n", fb.CreatedAt.In(loc).Format("02/01/2006 15:04"), fb.Title)
				}
			}
			if selectable := vm.SelectableStatuses(); len(selectable) > 0 {
				fmt.Print("  Próximos status:")
				for _, s := range selectable {
					fmt.Printf(" %s", s)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func registerOccurrenceCmd(app *App) *cobra.Command {
	var (
		occurrenceType string
		description    string
		address        string
		lat, lon       float64
		mediaPaths     []string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new occurrence",
		Long: `Register a new occurrence at a location given either as coordinates
(--lat/--lon, reverse geocoded to an address) or as a free-form address
(--address, forward geocoded to coordinates).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			if err := requireAuth(ctx, app); err != nil {
				return err
			}

			nav := &Navigator{}
			vm := viewmodel.NewRegister(app.Client, app.Geocoder, app.Session, app.Notifier, nav)
			vm.SetType(occurrenceType)
			vm.SetDescription(description)

			switch {
			case cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon"):
				vm.SetCoordinates(ctx, lat, lon)
			case address != "":
				vm.SetAddress(address)
				if err := vm.SearchAddress(ctx); err != nil {
					return err
				}
			}

			var files []client.MediaFile
			var handles []*os.File
			defer func() {
				for _, h := range handles {
					h.Close()
				}
			}()
			for _, path := range mediaPaths {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("opening media file: %w", err)
				}
				handles = append(handles, f)
				files = append(files, client.MediaFile{Name: filepath.Base(path), Reader: f})
			}
			vm.AttachFiles(files)

			return vm.Submit(ctx)
		},
	}

	cmd.Flags().StringVar(&occurrenceType, "type", model.TypeKeys[0], "occurrence type key")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	cmd.Flags().StringVar(&address, "address", "", "address to geocode")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().StringSliceVar(&mediaPaths, "media", nil, "image files to attach")

	return cmd
}

func statusOccurrenceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status [id] [analyzing|in_progress|finished]",
		Short: "Append a status transition to an occurrence",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireAuth(ctx, app); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid occurrence id %q", args[0])
			}

			nav := &Navigator{}
			vm := viewmodel.NewOccurrenceDetail(app.Client, app.Session, app.Notifier, nav, id)
			if err := vm.Load(ctx); err != nil {
				return err
			}
			return vm.UpdateStatus(ctx, model.Status(args[1]))
		},
	}
}

func finalizeOccurrenceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finalize [id]",
		Short: "Mark an occurrence as finished",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireAuth(ctx, app); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid occurrence id %q", args[0])
			}

			nav := &Navigator{}
			vm := viewmodel.NewOccurrenceDetail(app.Client, app.Session, app.Notifier, nav, id)
			if err := vm.Load(ctx); err != nil {
				return err
			}
			return vm.Finalize(ctx)
		},
	}
}

func deleteOccurrenceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an occurrence and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireAuth(ctx, app); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid occurrence id %q", args[0])
			}

			nav := &Navigator{}
			vm := viewmodel.NewOccurrenceDetail(app.Client, app.Session, app.Notifier, nav, id)
			return vm.Delete(ctx)
		},
	}
}

func exportOccurrencesCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every occurrence as CSV",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			if err := requireAuth(ctx, app); err != nil {
				return err
			}

			vm := viewmodel.NewOccurrenceList(app.Client, app.Notifier, app.Config.Location(), app.Config.PageSize)
			if err := vm.Load(ctx); err != nil {
				return err
			}

			csv, err := vm.ExportCSV(ctx)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Print(csv)
				return nil
			}
			if err := os.WriteFile(output, []byte(csv), 0o644); err != nil {
				return fmt.Errorf("writing CSV file: %w", err)
			}
			fmt.Printf("Exportado para %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	return cmd
}
