package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sosdefesa/admin/internal/store"
)

type MediaHandler struct {
	store *store.Store
}

func NewMediaHandler(st *store.Store) *MediaHandler {
	return &MediaHandler{store: st}
}

// Upload attaches multipart files (field name "midias") to an occurrence.
// The simulator only records the generated paths; file bytes are discarded.
func (h *MediaHandler) Upload(c *gin.Context) {
	occurrenceID, err := strconv.ParseInt(c.Query("ocorrencia_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ocorrencia_id"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}
	files := form.File["midias"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no midias in form"})
		return
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		paths = append(paths, fmt.Sprintf("/media/%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
	}

	if err := h.store.AddMedia(occurrenceID, paths); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "occurrence not found"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"midias": paths})
}
