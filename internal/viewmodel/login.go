package viewmodel

import (
	"context"
	"fmt"

	"github.com/sosdefesa/admin/internal/apperr"
	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/session"
)

// LoginViewModel backs the login screen.
type LoginViewModel struct {
	screen

	client    *client.Client
	session   *session.Context
	notifier  Notifier
	navigator Navigator
}

func NewLogin(c *client.Client, sess *session.Context, n Notifier, nav Navigator) *LoginViewModel {
	return &LoginViewModel{client: c, session: sess, notifier: n, navigator: nav}
}

// Login exchanges the credentials for a token, stores it in the session
// context and navigates to the dashboard.
func (vm *LoginViewModel) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		vm.notifier.Error("Preencha usuário e senha")
		return fmt.Errorf("%w: missing credentials", apperr.ErrValidation)
	}

	token, err := vm.client.Login(ctx, username, password)
	if err != nil {
		vm.notifier.Error("Erro ao fazer login")
		return err
	}

	if !vm.apply(func() {
		vm.session.SetToken(token)
	}) {
		return nil
	}

	vm.notifier.Success("Login realizado com sucesso!")
	vm.navigator.NavigateTo(RouteDashboard)
	return nil
}
