package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sosdefesa/admin/internal/store"
)

type LogHandler struct {
	store *store.Store
}

func NewLogHandler(st *store.Store) *LogHandler {
	return &LogHandler{store: st}
}

// List returns the audit log in insertion order.
func (h *LogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Logs())
}
