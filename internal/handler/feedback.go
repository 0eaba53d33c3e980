package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sosdefesa/admin/internal/model"
	"github.com/sosdefesa/admin/internal/store"
)

type FeedbackHandler struct {
	store *store.Store
}

func NewFeedbackHandler(st *store.Store) *FeedbackHandler {
	return &FeedbackHandler{store: st}
}

// Create appends one status-transition event to an occurrence's history.
func (h *FeedbackHandler) Create(c *gin.Context) {
	var fb model.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback payload"})
		return
	}
	switch fb.Status {
	case model.StatusAnalyzing, model.StatusInProgress, model.StatusFinished:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown feedback status"})
		return
	}

	actor, ok := h.store.Account(c.GetInt64("userID"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	created, err := h.store.AppendFeedback(fb, actor)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "occurrence not found"})
	case errors.Is(err, store.ErrFinished):
		c.JSON(http.StatusConflict, gin.H{"error": "occurrence is already finished"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to append feedback"})
	default:
		c.JSON(http.StatusCreated, created)
	}
}
