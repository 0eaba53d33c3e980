package viewmodel

import (
	"context"
	"fmt"
	"time"

	"github.com/sosdefesa/admin/internal/apperr"
	"github.com/sosdefesa/admin/internal/client"
	"github.com/sosdefesa/admin/internal/lifecycle"
	"github.com/sosdefesa/admin/internal/model"
	"github.com/sosdefesa/admin/internal/session"
)

// OccurrenceDetailViewModel backs the single-occurrence screen: the full
// record, the feedback timeline and the lifecycle actions. All gating uses
// the status derived from the fetched feedback history, never a stored
// status field.
type OccurrenceDetailViewModel struct {
	screen

	client    *client.Client
	session   *session.Context
	notifier  Notifier
	navigator Navigator

	id     int64
	detail model.OccurrenceDetail
	loaded bool
}

func NewOccurrenceDetail(c *client.Client, sess *session.Context, n Notifier, nav Navigator, id int64) *OccurrenceDetailViewModel {
	return &OccurrenceDetailViewModel{client: c, session: sess, notifier: n, navigator: nav, id: id}
}

// Load fetches the full record including feedbacks and media.
func (vm *OccurrenceDetailViewModel) Load(ctx context.Context) error {
	detail, err := vm.client.GetOccurrence(ctx, vm.id)
	if err != nil {
		vm.notifier.Error("Erro ao buscar ocorrência")
		return err
	}

	vm.apply(func() {
		vm.detail = detail
		vm.loaded = true
	})
	return nil
}

// Detail returns the loaded record.
func (vm *OccurrenceDetailViewModel) Detail() (model.OccurrenceDetail, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.detail, vm.loaded
}

// Status is the derived lifecycle state of the loaded occurrence.
func (vm *OccurrenceDetailViewModel) Status() model.Status {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return lifecycle.DerivedStatus(vm.detail.Feedbacks)
}

// SelectableStatuses are the options the update-status control may offer.
func (vm *OccurrenceDetailViewModel) SelectableStatuses() []model.Status {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return lifecycle.SelectableStatuses(vm.detail.Feedbacks)
}

// UpdateStatus appends a feedback entry with the chosen status. Confirming
// without a selection is a validation failure caught before any request.
func (vm *OccurrenceDetailViewModel) UpdateStatus(ctx context.Context, status model.Status) error {
	if status == "" {
		vm.notifier.Error("Por favor, selecione um status")
		return fmt.Errorf("%w: no status selected", apperr.ErrValidation)
	}

	vm.mu.Lock()
	err := lifecycle.EnsureTransitionable(vm.detail.Feedbacks)
	vm.mu.Unlock()
	if err != nil {
		vm.notifier.Error("Erro ao atualizar ocorrência")
		return err
	}

	title := model.StatusNames[status]
	fb := model.Feedback{
		OccurrenceID: vm.id,
		UserID:       vm.session.UserID(),
		Title:        title,
		Description:  title,
		Status:       status,
		CreatedAt:    time.Now(),
	}
	if err := vm.client.CreateFeedback(ctx, fb); err != nil {
		vm.notifier.Error("Erro ao atualizar ocorrência")
		return err
	}

	if err := vm.Load(ctx); err != nil {
		return err
	}
	vm.notifier.Success("Ocorrência atualizada com sucesso!")
	return nil
}

// Finalize requests the terminal transition. Repeated finalize calls on an
// already-finished occurrence fail instead of silently succeeding.
func (vm *OccurrenceDetailViewModel) Finalize(ctx context.Context) error {
	vm.mu.Lock()
	err := lifecycle.EnsureTransitionable(vm.detail.Feedbacks)
	vm.mu.Unlock()
	if err != nil {
		vm.notifier.Error("Erro ao finalizar ocorrência")
		return err
	}

	if err := vm.client.FinalizeOccurrence(ctx, vm.id); err != nil {
		vm.notifier.Error("Erro ao finalizar ocorrência")
		return err
	}

	if err := vm.Load(ctx); err != nil {
		return err
	}
	vm.notifier.Success("Ocorrência finalizada com sucesso!")
	return nil
}

// Delete removes the occurrence and returns to the listing. Always legal.
func (vm *OccurrenceDetailViewModel) Delete(ctx context.Context) error {
	if err := vm.client.DeleteOccurrence(ctx, vm.id); err != nil {
		vm.notifier.Error("Erro ao deletar ocorrência")
		return err
	}
	vm.notifier.Success("Ocorrência deletada com sucesso!")
	vm.navigator.NavigateTo(RouteOccurrences)
	return nil
}
