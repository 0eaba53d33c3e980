package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sosdefesa/admin/internal/middleware"
	"github.com/sosdefesa/admin/internal/store"
)

// NewRouter wires every backend route the dashboard consumes. The same
// engine backs the apisim binary and the end-to-end tests.
func NewRouter(st *store.Store, jwtSecret string) *gin.Engine {
	authHandler := NewAuthHandler(st, jwtSecret)
	occurrenceHandler := NewOccurrenceHandler(st)
	feedbackHandler := NewFeedbackHandler(st)
	mediaHandler := NewMediaHandler(st)
	logHandler := NewLogHandler(st)
	dashboardHandler := NewDashboardHandler(st)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.GET("", authHandler.ListUsers)
		api.GET("/ocorrencias/list", occurrenceHandler.List)
		api.GET("/ocorrencia/:id/", occurrenceHandler.Get)
		api.GET("/registro", logHandler.List)

		api.GET("/dashboard/sessions-card", dashboardHandler.SessionsCard)
		api.GET("/dashboard/ocorrencias-card", dashboardHandler.OccurrencesCard)
		api.GET("/dashboard/curtidas-card", dashboardHandler.LikesCard)
		api.GET("/dashboard/pie-chart", dashboardHandler.PieChart)
		api.GET("/dashboard/monthly-chart", dashboardHandler.MonthlyChart)

		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(jwtSecret))
		{
			authed.GET("/me", authHandler.Me)
			authed.POST("/ocorrencia/", occurrenceHandler.Create)
			authed.DELETE("/ocorrencia/:id/", occurrenceHandler.Delete)
			authed.POST("/ocorrencia/:id/finalizar", occurrenceHandler.Finalize)
			authed.POST("/feedback/", feedbackHandler.Create)
			authed.POST("/midia/", mediaHandler.Upload)
		}
	}

	return r
}
