package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sosdefesa/admin/internal/store"
)

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{store: st}
}

func (h *DashboardHandler) SessionsCard(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SessionsCard(time.Now()))
}

func (h *DashboardHandler) OccurrencesCard(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.OccurrencesCard(time.Now()))
}

func (h *DashboardHandler) LikesCard(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.LikesCard(time.Now()))
}

func (h *DashboardHandler) PieChart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.PieChart()})
}

func (h *DashboardHandler) MonthlyChart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.store.MonthlyChart()})
}
