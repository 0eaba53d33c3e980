package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/sosdefesa/admin/internal/viewmodel"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// LoginCommands returns the login and logout commands.
func LoginCommands(app *App) []*cobra.Command {
	login := &cobra.Command{
		Use:   "login [username]",
		Short: "Authenticate and store the access token",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLogin(app),
	}

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored access token",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := clearToken(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}

	return []*cobra.Command{login, logout}
}

func runLogin(app *App) func(cmd *cobra.Command, args []string) error {
	return func(_ *cobra.Command, args []string) error {
		ctx := context.Background()

		var username string
		if len(args) == 1 {
			username = args[0]
		} else {
			fmt.Print("Username: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading username: %w", err)
			}
			username = strings.TrimSpace(line)
		}

		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password := strings.TrimSpace(string(raw))

		nav := &Navigator{}
		vm := viewmodel.NewLogin(app.Client, app.Session, app.Notifier, nav)
		if err := vm.Login(ctx, username, password); err != nil {
			return err
		}

		return saveToken(app.Session.Token())
	}
}
