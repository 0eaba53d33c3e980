package viewmodel

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/sosdefesa/admin/internal/apperr"
	"github.com/sosdefesa/admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// detailBackend serves one occurrence and appends posted feedback to it.
type detailBackend struct {
	detail    model.OccurrenceDetail
	feedbacks []model.Feedback
	finalized int
	deleted   int
}

func (b *detailBackend) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ocorrencia/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(b.detail)
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/finalizar"):
			b.finalized++
			b.detail.Feedbacks = append(b.detail.Feedbacks, model.Feedback{
				Status: model.StatusFinished,
				Title:  model.StatusNames[model.StatusFinished],
			})
			w.Write([]byte(`{"message":"ok"}`))
		case r.Method == http.MethodDelete:
			b.deleted++
			w.Write([]byte(`{"message":"ok"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	mux.HandleFunc("/api/feedback/", func(w http.ResponseWriter, r *http.Request) {
		var fb model.Feedback
		json.NewDecoder(r.Body).Decode(&fb)
		b.feedbacks = append(b.feedbacks, fb)
		b.detail.Feedbacks = append(b.detail.Feedbacks, fb)
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

func openDetail() model.OccurrenceDetail {
	return model.OccurrenceDetail{
		ID:           7,
		Type:         "alagamentos",
		Neighborhood: "Centro",
		Description:  "Rua alagada",
		CreatedAt:    time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestDetail_StatusIsDerivedFromHistory(t *testing.T) {
	backend := &detailBackend{detail: openDetail()}
	c, sess := newBackend(t, backend.mux())

	vm := NewOccurrenceDetail(c, sess, &recorder{}, &router{}, 7)
	require.NoError(t, vm.Load(context.Background()))

	assert.Equal(t, model.StatusOpen, vm.Status())
	assert.Equal(t,
		[]model.Status{model.StatusAnalyzing, model.StatusInProgress, model.StatusFinished},
		vm.SelectableStatuses())
}

func TestDetail_UpdateStatusRequiresSelection(t *testing.T) {
	backend := &detailBackend{detail: openDetail()}
	c, sess := newBackend(t, backend.mux())
	notes := &recorder{}

	vm := NewOccurrenceDetail(c, sess, notes, &router{}, 7)
	require.NoError(t, vm.Load(context.Background()))

	err := vm.UpdateStatus(context.Background(), "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, backend.feedbacks)
	assert.Equal(t, []string{"Por favor, selecione um status"}, notes.Errors())
}

func TestDetail_UpdateStatusAppendsTitledFeedback(t *testing.T) {
	backend := &detailBackend{detail: openDetail()}
	c, sess := newBackend(t, backend.mux())
	sess.SetUser(3, "Maria")

	vm := NewOccurrenceDetail(c, sess, &recorder{}, &router{}, 7)
	require.NoError(t, vm.Load(context.Background()))
	require.NoError(t, vm.UpdateStatus(context.Background(), model.StatusAnalyzing))

	require.Len(t, backend.feedbacks, 1)
	fb := backend.feedbacks[0]
	assert.Equal(t, int64(7), fb.OccurrenceID)
	assert.Equal(t, int64(3), fb.UserID)
	assert.Equal(t, "Ocorrência em Análise", fb.Title)
	assert.Equal(t, fb.Title, fb.Description)
	assert.Equal(t, model.StatusAnalyzing, fb.Status)

	// The refetched history drives the derived status and the options.
	assert.Equal(t, model.StatusAnalyzing, vm.Status())
	assert.Equal(t,
		[]model.Status{model.StatusInProgress, model.StatusFinished},
		vm.SelectableStatuses())
}

func TestDetail_TransitionsRejectedOnceFinished(t *testing.T) {
	detail := openDetail()
	detail.Feedbacks = []model.Feedback{{Status: model.StatusFinished}}
	backend := &detailBackend{detail: detail}
	c, sess := newBackend(t, backend.mux())

	vm := NewOccurrenceDetail(c, sess, &recorder{}, &router{}, 7)
	require.NoError(t, vm.Load(context.Background()))

	assert.ErrorIs(t, vm.UpdateStatus(context.Background(), model.StatusInProgress), apperr.ErrInvalidTransition)
	assert.ErrorIs(t, vm.Finalize(context.Background()), apperr.ErrInvalidTransition)
	assert.Empty(t, backend.feedbacks)
	assert.Zero(t, backend.finalized)
	assert.Nil(t, vm.SelectableStatuses())
}

func TestDetail_FinalizeRefetches(t *testing.T) {
	backend := &detailBackend{detail: openDetail()}
	c, sess := newBackend(t, backend.mux())

	vm := NewOccurrenceDetail(c, sess, &recorder{}, &router{}, 7)
	require.NoError(t, vm.Load(context.Background()))
	require.NoError(t, vm.Finalize(context.Background()))

	assert.Equal(t, 1, backend.finalized)
	assert.Equal(t, model.StatusFinished, vm.Status())

	// Finalizing again fails locally without another request.
	assert.ErrorIs(t, vm.Finalize(context.Background()), apperr.ErrInvalidTransition)
	assert.Equal(t, 1, backend.finalized)
}

func TestDetail_DeleteNavigatesBackToListing(t *testing.T) {
	backend := &detailBackend{detail: openDetail()}
	c, sess := newBackend(t, backend.mux())
	nav := &router{}

	vm := NewOccurrenceDetail(c, sess, &recorder{}, nav, 7)
	require.NoError(t, vm.Load(context.Background()))
	require.NoError(t, vm.Delete(context.Background()))

	assert.Equal(t, 1, backend.deleted)
	assert.Equal(t, []string{RouteOccurrences}, nav.Routes())
}
