package viewmodel

import (
	"context"

	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/session"
)

// ShellViewModel backs the chrome around every authenticated screen: it
// confirms the identity behind the stored token and redirects to the login
// screen when the check fails.
type ShellViewModel struct {
	screen

	client    *client.Client
	session   *session.Context
	notifier  Notifier
	navigator Navigator

	userName   string
	redirected bool
}

func NewShell(c *client.Client, sess *session.Context, n Notifier, nav Navigator) *ShellViewModel {
	return &ShellViewModel{client: c, session: sess, notifier: n, navigator: nav}
}

// LoadUser verifies the token via /api/me and stores the confirmed identity
// in the session context. A failed check clears the session and navigates to
// the login screen exactly once; it is never retried.
func (vm *ShellViewModel) LoadUser(ctx context.Context) error {
	if !vm.session.Authenticated() {
		return nil
	}

	me, err := vm.client.Me(ctx)
	if err != nil {
		vm.apply(func() {
			vm.session.Clear()
			if !vm.redirected {
				vm.redirected = true
				vm.notifier.Error("Erro ao buscar dados do usuário")
				vm.navigator.NavigateTo(RouteLogin)
			}
		})
		return err
	}

	vm.apply(func() {
		vm.session.SetUser(me.ID, me.Name)
		vm.userName = me.Name
	})
	return nil
}

// UserName returns the confirmed display name, empty until LoadUser succeeds.
func (vm *ShellViewModel) UserName() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.userName
}
