// Package lifecycle derives an occurrence's current state from its feedback
// history and gates the transitions that may be requested from the backend.
// The checks here only avoid wasted round trips; the backend remains the
// authority and may still reject a request.
package lifecycle

import (
	"fmt"

	"github.com/sosdefesa/admin/internal/apperr"
	"github.com/sosdefesa/admin/internal/model"
)

// DerivedStatus computes the effective status of an occurrence from its
// feedback history: finished if any entry is finished, otherwise the status
// of the most recent entry, otherwise open.
func DerivedStatus(feedbacks []model.Feedback) model.Status {
	for _, fb := range feedbacks {
		if fb.Status == model.StatusFinished {
			return model.StatusFinished
		}
	}
	if len(feedbacks) == 0 {
		return model.StatusOpen
	}
	return feedbacks[len(feedbacks)-1].Status
}

// Finished reports whether the history contains a terminal entry.
func Finished(feedbacks []model.Feedback) bool {
	return DerivedStatus(feedbacks) == model.StatusFinished
}

// EnsureTransitionable fails with an invalid-transition error when the
// occurrence is already finished. Appending feedback and finalizing are both
// illegal past that point; repeated finalize calls must fail, not silently
// succeed.
func EnsureTransitionable(feedbacks []model.Feedback) error {
	if Finished(feedbacks) {
		return fmt.Errorf("%w: occurrence is already finished", apperr.ErrInvalidTransition)
	}
	return nil
}

// SelectableStatuses returns the statuses the update-status control may
// offer: each status is offered at most once over the occurrence's life, and
// nothing is offered once the occurrence is finished.
func SelectableStatuses(feedbacks []model.Feedback) []model.Status {
	if Finished(feedbacks) {
		return nil
	}

	used := make(map[model.Status]bool, len(feedbacks))
	for _, fb := range feedbacks {
		used[fb.Status] = true
	}

	options := make([]model.Status, 0, 3)
	for _, s := range []model.Status{model.StatusAnalyzing, model.StatusInProgress, model.StatusFinished} {
		if !used[s] {
			options = append(options, s)
		}
	}
	return options
}
