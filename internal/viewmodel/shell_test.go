package viewmodel

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_NoTokenIsNoOp(t *testing.T) {
	var hits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/me", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
	})
	c, sess := newBackend(t, mux)

	vm := NewShell(c, sess, &recorder{}, &router{})
	require.NoError(t, vm.LoadUser(context.Background()))
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestShell_StoresConfirmedIdentity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/me", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":7,"nome":"Maria Silva","admin":true}`))
	})
	c, sess := newBackend(t, mux)
	sess.SetToken("tok")

	vm := NewShell(c, sess, &recorder{}, &router{})
	require.NoError(t, vm.LoadUser(context.Background()))

	assert.Equal(t, "Maria Silva", vm.UserName())
	assert.Equal(t, int64(7), sess.UserID())
}

func TestShell_FailedCheckRedirectsExactlyOnce(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/me", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c, sess := newBackend(t, mux)
	nav := &router{}
	notes := &recorder{}

	vm := NewShell(c, sess, notes, nav)

	sess.SetToken("expired")
	require.Error(t, vm.LoadUser(context.Background()))
	assert.False(t, sess.Authenticated(), "session is cleared")
	assert.Equal(t, []string{RouteLogin}, nav.Routes())

	// A second failing check must not redirect again.
	sess.SetToken("still-expired")
	require.Error(t, vm.LoadUser(context.Background()))
	assert.Equal(t, []string{RouteLogin}, nav.Routes())
	assert.Len(t, notes.Errors(), 1)
}
