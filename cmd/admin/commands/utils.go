package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/config"
	"github.com/sosdefesa/admin/internal/geocode"
	"github.com/sosdefesa/admin/internal/session"
	"github.com/sosdefesa/admin/internal/viewmodel"
	"go.uber.org/zap"
)

// App carries the shared resources every subcommand needs: configuration,
// the session context, the API client and the geocoder.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Session  *session.Context
	Client   *client.Client
	Geocoder *geocode.Client
	Notifier *Notifier
}

func NewApp(cfg *config.Config, logger *zap.Logger) *App {
	sess := session.New()
	return &App{
		Config:   cfg,
		Logger:   logger,
		Session:  sess,
		Client:   client.New(cfg.APIBaseURL, sess, logger),
		Geocoder: geocode.NewClient(cfg.NominatimURL),
		Notifier: &Notifier{},
	}
}

// Notifier prints view-model notifications to the terminal. Success goes to
// stdout, errors to stderr.
type Notifier struct{}

func (n *Notifier) Success(message string) { fmt.Println(message) }
func (n *Notifier) Error(message string)   { fmt.Fprintln(os.Stderr, message) }

// Navigator records the requested route instead of switching screens; the
// CLI has no screens, but the auth redirect still needs somewhere to land.
type Navigator struct {
	route string
}

func (n *Navigator) NavigateTo(route string) { n.route = route }
func (n *Navigator) Route() string           { return n.route }

func tokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".sosdefesa", "token"), nil
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

func loadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func clearToken() error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// requireAuth restores the saved token and verifies it against /api/me.
// A missing or rejected token aborts the command.
func requireAuth(ctx context.Context, app *App) error {
	token, err := loadToken()
	if err != nil {
		return fmt.Errorf("not logged in, run: admin login")
	}
	app.Session.SetToken(token)

	nav := &Navigator{}
	shell := viewmodel.NewShell(app.Client, app.Session, app.Notifier, nav)
	if err := shell.LoadUser(ctx); err != nil {
		_ = clearToken()
		return fmt.Errorf("session expired, run: admin login")
	}
	return nil
}
