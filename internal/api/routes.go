package api

import (
	"alcyxob/exercise-catalog/internal/domain"
	"alcyxob/exercise-catalog/internal/metrics"
	"alcyxob/exercise-catalog/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	exerciseService service.ExerciseService,
	metricsManager *metrics.Manager,
	gatherer prometheus.Gatherer,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)
	adminHandler := NewAdminHandler(exerciseService)

	router.Use(RequestLogger(metricsManager))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		// --- Public catalog routes ---
		apiV1.GET("/exercises", exerciseHandler.SearchExercises)
		apiV1.GET("/exercises/:name", exerciseHandler.GetExercise)
		apiV1.GET("/facets", exerciseHandler.GetFacets)
		apiV1.GET("/catalog/status", exerciseHandler.GetCatalogStatus)
	}

	// --- Admin routes ---
	// Require a valid token carrying the 'admin' role.
	admin := apiV1.Group("/admin")
	admin.Use(AuthMiddleware(jwtSecret), RoleMiddleware(domain.RoleAdmin))
	{
		admin.POST("/catalog/reload", adminHandler.ReloadCatalog)
		admin.GET("/catalog/snapshot-url", adminHandler.GetSnapshotURL)
		admin.POST("/exercises/import", adminHandler.ImportExercises)
		admin.POST("/exercises/:name/video", adminHandler.RequestVideoUpload)
		admin.PUT("/exercises/:name/video", adminHandler.ConfirmVideoUpload)
	}
}
