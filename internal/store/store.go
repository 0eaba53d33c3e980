// Package store is the in-memory state behind the backend simulator. It
// exists so the admin client can be developed and tested without the real
// occurrence service; nothing here survives a restart, deliberately.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sosdefesa/admin/internal/lifecycle"
	"github.com/sosdefesa/admin/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrFinished = errors.New("occurrence is already finished")
)

// Account is one login the simulator accepts.
type Account struct {
	ID       int64
	Username string
	Password string
	Name     string
	Admin    bool
}

// Card mirrors the dashboard card payload.
type Card struct {
	Total            int     `json:"total"`
	Today            int     `json:"today"`
	YesterdayPercent float64 `json:"yesterdayPercent"`
	LastWeekPercent  float64 `json:"lastWeekPercent"`
}

type Store struct {
	mu       sync.Mutex
	location *time.Location

	accounts []Account

	occurrences map[int64]*model.OccurrenceDetail
	order       []int64

	logs       []model.LogEntry
	accessDays map[string]int

	nextOccurrenceID int64
	nextFeedbackID   int64
	nextLogID        int64
	nextAccountID    int64
}

func New(loc *time.Location) *Store {
	return &Store{
		location:    loc,
		occurrences: make(map[int64]*model.OccurrenceDetail),
		accessDays:  make(map[string]int),
	}
}

// AddAccount registers a login and returns it with its assigned id.
func (s *Store) AddAccount(username, password, name string, admin bool) Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAccountID++
	account := Account{
		ID:       s.nextAccountID,
		Username: username,
		Password: password,
		Name:     name,
		Admin:    admin,
	}
	s.accounts = append(s.accounts, account)
	return account
}

// Authenticate matches the credentials against the registered accounts and
// records the access for the sessions card.
func (s *Store) Authenticate(username, password string) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Username == username && account.Password == password {
			s.accessDays[s.dayKey(time.Now())]++
			return account, true
		}
	}
	return Account{}, false
}

// Account looks up a registered account by id.
func (s *Store) Account(id int64) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.ID == id {
			return account, true
		}
	}
	return Account{}, false
}

// Users returns the roster in registration order.
func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]model.User, 0, len(s.accounts))
	for _, account := range s.accounts {
		users = append(users, model.User{ID: account.ID, Name: account.Name, Admin: account.Admin})
	}
	return users
}

// CreateOccurrence stores a new record and writes a CREATE audit entry.
func (s *Store) CreateOccurrence(payload model.NewOccurrence, actor Account) model.OccurrenceDetail {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOccurrenceID++
	detail := &model.OccurrenceDetail{
		ID:             s.nextOccurrenceID,
		Type:           payload.Type,
		Neighborhood:   payload.Neighborhood,
		Latitude:       payload.Latitude,
		Longitude:      payload.Longitude,
		Description:    payload.Description,
		AuthorUsername: actor.Username,
		CreatedAt:      payload.CreatedAt,
		LastUpdatedAt:  payload.LastUpdatedAt,
		Media:          []string{},
		Feedbacks:      []model.Feedback{},
	}
	s.occurrences[detail.ID] = detail
	s.order = append(s.order, detail.ID)

	s.appendLog(actor, model.ActionCreate, fmt.Sprintf("Ocorrência %d criada (%s)", detail.ID, model.TypeName(detail.Type)))
	return *detail
}

// ListOccurrences returns one page of listing rows, newest first, plus the
// total count.
func (s *Store) ListOccurrences(limit, offset int) ([]model.Occurrence, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.order)
	rows := make([]model.Occurrence, 0, limit)
	for i := total - 1 - offset; i >= 0 && len(rows) < limit; i-- {
		detail := s.occurrences[s.order[i]]
		rows = append(rows, model.Occurrence{
			ID:              detail.ID,
			Type:            detail.Type,
			Neighborhood:    detail.Neighborhood,
			Latitude:        detail.Latitude,
			Longitude:       detail.Longitude,
			AuthorUsername:  detail.AuthorUsername,
			CreatedAt:       detail.CreatedAt,
			LikeCount:       detail.LikeCount,
			AttachmentCount: len(detail.Media),
			Status:          lifecycle.DerivedStatus(detail.Feedbacks),
		})
	}
	return rows, total
}

// GetOccurrence returns a copy of the full record.
func (s *Store) GetOccurrence(id int64) (model.OccurrenceDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	detail, ok := s.occurrences[id]
	if !ok {
		return model.OccurrenceDetail{}, false
	}
	return *detail, true
}

// DeleteOccurrence removes the record, cascading to its feedback and media,
// and writes a DELETE audit entry.
func (s *Store) DeleteOccurrence(id int64, actor Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.occurrences[id]; !ok {
		return ErrNotFound
	}
	delete(s.occurrences, id)
	for i, ocID := range s.order {
		if ocID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.appendLog(actor, model.ActionDelete, fmt.Sprintf("Ocorrência %d apagada", id))
	return nil
}

// AppendFeedback appends one status event to the history. Appending past a
// finished entry is rejected; the history itself is never mutated.
func (s *Store) AppendFeedback(fb model.Feedback, actor Account) (model.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	detail, ok := s.occurrences[fb.OccurrenceID]
	if !ok {
		return model.Feedback{}, ErrNotFound
	}
	if lifecycle.Finished(detail.Feedbacks) {
		return model.Feedback{}, ErrFinished
	}

	s.nextFeedbackID++
	fb.ID = s.nextFeedbackID
	detail.Feedbacks = append(detail.Feedbacks, fb)
	detail.LastUpdatedAt = fb.CreatedAt

	s.appendLog(actor, model.ActionUpdate, fmt.Sprintf("Ocorrência %d atualizada: %s", fb.OccurrenceID, fb.Title))
	return fb, nil
}

// Finalize appends the terminal feedback entry with a system-generated
// title. A second finalize fails, it does not silently succeed.
func (s *Store) Finalize(id int64, actor Account) error {
	title := model.StatusNames[model.StatusFinished]
	_, err := s.AppendFeedback(model.Feedback{
		OccurrenceID: id,
		UserID:       actor.ID,
		Title:        title,
		Description:  title,
		Status:       model.StatusFinished,
		CreatedAt:    time.Now(),
	}, actor)
	return err
}

// AddMedia appends uploaded media paths. Media is immutable once attached.
func (s *Store) AddMedia(id int64, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	detail, ok := s.occurrences[id]
	if !ok {
		return ErrNotFound
	}
	detail.Media = append(detail.Media, paths...)
	return nil
}

// Logs returns the audit log in insertion order.
func (s *Store) Logs() []model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := make([]model.LogEntry, len(s.logs))
	copy(logs, s.logs)
	return logs
}

// appendLog writes one audit entry. Callers hold the lock.
func (s *Store) appendLog(actor Account, action, description string) {
	s.nextLogID++
	s.logs = append(s.logs, model.LogEntry{
		ID:          s.nextLogID,
		ActorName:   actor.Name,
		ActorUserID: actor.ID,
		Timestamp:   time.Now(),
		Action:      action,
		Description: description,
	})
}

// SessionsCard summarizes recorded accesses.
func (s *Store) SessionsCard(now time.Time) Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, count := range s.accessDays {
		total += count
	}
	return s.card(now, total, func(day string) int { return s.accessDays[day] })
}

// OccurrencesCard summarizes occurrence registrations by creation date.
func (s *Store) OccurrencesCard(now time.Time) Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDay := make(map[string]int)
	for _, id := range s.order {
		byDay[s.dayKey(s.occurrences[id].CreatedAt)]++
	}
	return s.card(now, len(s.order), func(day string) int { return byDay[day] })
}

// LikesCard summarizes like counts; the simulator has no like endpoint, so
// only seeded values show up here.
func (s *Store) LikesCard(now time.Time) Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, id := range s.order {
		total += s.occurrences[id].LikeCount
	}
	return Card{Total: total}
}

// card derives today's count and the percentage change against yesterday
// and against the previous seven days. Callers hold the lock.
func (s *Store) card(now time.Time, total int, countFor func(day string) int) Card {
	today := countFor(s.dayKey(now))
	yesterday := countFor(s.dayKey(now.AddDate(0, 0, -1)))

	lastWeek := 0
	for i := 1; i <= 7; i++ {
		lastWeek += countFor(s.dayKey(now.AddDate(0, 0, -i)))
	}

	return Card{
		Total:            total,
		Today:            today,
		YesterdayPercent: percentChange(today, yesterday),
		LastWeekPercent:  percentChange(today, lastWeek),
	}
}

func percentChange(current, previous int) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}

// PieChart counts occurrences per disaster type, in catalogue order.
func (s *Store) PieChart() []model.TypeCountBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, id := range s.order {
		counts[s.occurrences[id].Type]++
	}

	buckets := make([]model.TypeCountBucket, 0, len(counts))
	for _, key := range model.TypeKeys {
		if counts[key] > 0 {
			buckets = append(buckets, model.TypeCountBucket{Type: key, Count: counts[key]})
		}
	}
	return buckets
}

// MonthlyChart buckets occurrences by (year, month, type) in chronological
// order, grouping calendar months in the store's location.
func (s *Store) MonthlyChart() []model.MonthlyCountBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	typeIndex := make(map[string]int, len(model.TypeKeys))
	for i, key := range model.TypeKeys {
		typeIndex[key] = i
	}

	type bucketKey struct {
		year  int
		month int
		typ   string
	}
	counts := make(map[bucketKey]int)
	for _, id := range s.order {
		created := s.occurrences[id].CreatedAt.In(s.location)
		counts[bucketKey{created.Year(), int(created.Month()), s.occurrences[id].Type}]++
	}

	keys := make([]bucketKey, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		if keys[i].month != keys[j].month {
			return keys[i].month < keys[j].month
		}
		return typeIndex[keys[i].typ] < typeIndex[keys[j].typ]
	})

	buckets := make([]model.MonthlyCountBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, model.MonthlyCountBucket{
			Type:  key.typ,
			Year:  key.year,
			Month: key.month,
			Count: counts[key],
		})
	}
	return buckets
}

func (s *Store) dayKey(t time.Time) string {
	return t.In(s.location).Format("2006-01-02")
}
