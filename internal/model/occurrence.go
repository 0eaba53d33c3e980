package model

import "time"

// Status is the lifecycle state of an occurrence. It is derived from the
// feedback history, never stored on the occurrence itself.
type Status string

const (
	StatusOpen       Status = "open"
	StatusAnalyzing  Status = "analyzing"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// StatusNames maps a status to its display label.
var StatusNames = map[Status]string{
	StatusOpen:       "Ocorrência Criada",
	StatusAnalyzing:  "Ocorrência em Análise",
	StatusInProgress: "Solucionando Ocorrência",
	StatusFinished:   "Ocorrência Finalizada",
}

// Occurrence is one row of the paginated occurrence listing. The backend
// reports a status here because the listing does not carry the feedback
// history; it is display-only, every lifecycle decision goes through the
// derived status instead.
type Occurrence struct {
	ID              int64     `json:"id"`
	Type            string    `json:"tipo"`
	Neighborhood    string    `json:"bairro"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	AuthorUsername  string    `json:"username"`
	CreatedAt       time.Time `json:"data_registro"`
	LikeCount       int       `json:"likes"`
	AttachmentCount int       `json:"midias_count"`
	Status          Status    `json:"status"`
}

// OccurrenceDetail is the full record returned by GET /api/ocorrencia/{id}/.
type OccurrenceDetail struct {
	ID             int64      `json:"id"`
	Type           string     `json:"tipo"`
	Neighborhood   string     `json:"bairro"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Description    string     `json:"descricao"`
	AuthorUsername string     `json:"username,omitempty"`
	CreatedAt      time.Time  `json:"data_registro"`
	LastUpdatedAt  time.Time  `json:"ultima_atualizacao"`
	LikeCount      int        `json:"curtidas_count"`
	Media          []string   `json:"midias"`
	Feedbacks      []Feedback `json:"feedbacks"`
}

// NewOccurrence is the creation payload for POST /api/ocorrencia/.
type NewOccurrence struct {
	Type          string    `json:"tipo"`
	Neighborhood  string    `json:"bairro"`
	Description   string    `json:"descricao"`
	CreatedAt     time.Time `json:"data_registro"`
	LastUpdatedAt time.Time `json:"ultima_atualizacao"`
	UserID        int64     `json:"user_id"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
}

// Feedback is one append-only status-transition event. Entries are never
// mutated or deleted once recorded; insertion order is chronological order.
type Feedback struct {
	ID           int64     `json:"id"`
	OccurrenceID int64     `json:"oc_id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"titulo"`
	Description  string    `json:"descricao"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"data_registro"`
}
