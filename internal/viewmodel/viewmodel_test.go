package viewmodel

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/session"
	"go.uber.org/zap"
)

// recorder captures notifications for assertions.
type recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (r *recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, message)
}

func (r *recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, message)
}

func (r *recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

func (r *recorder) Successes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.successes...)
}

// router captures screen navigation.
type router struct {
	mu     sync.Mutex
	routes []string
}

func (r *router) NavigateTo(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func (r *router) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}

// newBackend serves the given mux and returns a client bound to it.
func newBackend(t *testing.T, mux *http.ServeMux) (*client.Client, *session.Context) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	sess := session.New()
	return client.New(srv.URL, sess, zap.NewNop()), sess
}
