// Package viewmodel orchestrates the client, filter engine, lifecycle and
// pagination for each screen and exposes the derived state the presentation
// layer renders. Every screen owns its in-memory copies for its lifetime and
// re-fetches on mount; nothing is shared mutably across screens.
//
// Failures never propagate past this layer: each one is converted into a
// single notification and the operation is abandoned. There are no automatic
// retries.
package viewmodel

import "sync"

// Notifier presents transient user-visible notifications.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator switches screens. The auth check uses it to redirect to the
// login screen when the identity check fails.
type Navigator interface {
	NavigateTo(route string)
}

// Screen routes.
const (
	RouteDashboard   = "/"
	RouteLogin       = "/login"
	RouteOccurrences = "/occurrences"
)

// screen carries the shared unmount guard. A screen closed mid-fetch
// discards the late result as a silent no-op instead of applying it to
// stale state.
type screen struct {
	mu     sync.Mutex
	closed bool
}

// Close marks the screen as unmounted.
func (s *screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// apply runs fn under the screen lock unless the screen has been closed.
// It reports whether fn ran.
func (s *screen) apply(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	fn()
	return true
}
