package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sosdefesa/admin/internal/model"
	"github.com/sosdefesa/admin/internal/store"
)

type OccurrenceHandler struct {
	store *store.Store
}

func NewOccurrenceHandler(st *store.Store) *OccurrenceHandler {
	return &OccurrenceHandler{store: st}
}

// List returns one page of listing rows plus the total count.
func (h *OccurrenceHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	rows, total := h.store.ListOccurrences(limit, offset)
	c.JSON(http.StatusOK, gin.H{"results": rows, "count": total})
}

// Get returns the full record including feedbacks and media.
func (h *OccurrenceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occurrence id"})
		return
	}

	detail, ok := h.store.GetOccurrence(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "occurrence not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create stores a new occurrence authored by the authenticated user.
func (h *OccurrenceHandler) Create(c *gin.Context) {
	var payload model.NewOccurrence
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occurrence payload"})
		return
	}
	if _, ok := model.TypeNames[payload.Type]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown occurrence type"})
		return
	}

	actor, ok := h.store.Account(c.GetInt64("userID"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	created := h.store.CreateOccurrence(payload, actor)
	c.JSON(http.StatusCreated, created)
}

// Delete removes an occurrence regardless of its state, cascading to its
// feedback and media.
func (h *OccurrenceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occurrence id"})
		return
	}

	actor, ok := h.store.Account(c.GetInt64("userID"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	if err := h.store.DeleteOccurrence(id, actor); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "occurrence not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "occurrence deleted"})
}

// Finalize appends the terminal feedback entry. Finalizing an occurrence
// that is already finished is rejected.
func (h *OccurrenceHandler) Finalize(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occurrence id"})
		return
	}

	actor, ok := h.store.Account(c.GetInt64("userID"))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}

	switch err := h.store.Finalize(id, actor); {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "occurrence not found"})
	case errors.Is(err, store.ErrFinished):
		c.JSON(http.StatusConflict, gin.H{"error": "occurrence is already finished"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to finalize occurrence"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "occurrence finalized"})
	}
}
