package model

import "time"

// Audit actions recorded by the backend.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// LogEntry is one audit record from GET /api/registro. The backend writes
// these as a side effect of mutating operations; this system only reads them.
type LogEntry struct {
	ID          int64     `json:"id"`
	ActorName   string    `json:"nome"`
	ActorUserID int64     `json:"user_id"`
	Timestamp   time.Time `json:"data"`
	Action      string    `json:"tipo"`
	Description string    `json:"descricao"`
}
