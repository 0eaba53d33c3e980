package model

// User is a roster entry from GET /api. Only consumed for display.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

// Me is the authenticated identity from GET /api/me. The wire name for the
// display name differs from the roster endpoint; both shapes are kept as the
// backend serves them.
type Me struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Admin bool   `json:"admin"`
}
