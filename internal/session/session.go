// Package session holds the process-wide authentication state: the bearer
// token obtained at login and the current user's identity from /api/me.
// It is injected into every component that issues authenticated requests
// instead of being looked up ambiently.
package session

import "sync"

// Context is the mutable session state. Reads happen at the start of every
// authenticated request; writes happen once at login and once after the
// identity check. A single active session per client instance is assumed,
// but access is still serialized.
type Context struct {
	mu     sync.RWMutex
	token  string
	userID int64
	name   string
}

func New() *Context {
	return &Context{}
}

// Token returns the stored bearer token, empty when logged out.
func (c *Context) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken stores the token obtained from /api/login.
func (c *Context) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// UserID returns the current user's id, 0 when unknown. It stamps the author
// fields of new occurrences and feedback entries.
func (c *Context) UserID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

// UserName returns the current user's display name.
func (c *Context) UserName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// SetUser stores the identity confirmed by /api/me.
func (c *Context) SetUser(id int64, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = id
	c.name = name
}

// Authenticated reports whether a token is present.
func (c *Context) Authenticated() bool {
	return c.Token() != ""
}

// Clear wipes the token and identity. Called when the identity check fails.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.userID = 0
	c.name = ""
}
