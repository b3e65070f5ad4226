package api

import (
	"alcyxob/exercise-catalog/internal/catalog"
	"alcyxob/exercise-catalog/internal/domain"
	"alcyxob/exercise-catalog/internal/service"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// parseSearchFilter reads the search criteria from the query string.
// equipment may be repeated or comma-separated.
func parseSearchFilter(c *gin.Context) domain.SearchFilter {
	var equipment []string
	for _, raw := range c.QueryArray("equipment") {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				equipment = append(equipment, item)
			}
		}
	}

	return domain.SearchFilter{
		SearchTerm:    c.Query("q"),
		Category:      strings.TrimSpace(c.Query("category")),
		Equipment:     equipment,
		PrimaryMuscle: strings.TrimSpace(c.Query("muscle")),
	}
}

// SearchExercises godoc
// @Summary Search the exercise catalog
// @Tags Exercises
// @Produce json
// @Param q query string false "Text matched against name, muscles and equipment"
// @Param category query string false "Exact category"
// @Param equipment query []string false "Required equipment, all must be present"
// @Param muscle query string false "Exact primary muscle"
// @Success 200 {array} domain.Exercise
// @Router /exercises [get]
func (h *ExerciseHandler) SearchExercises(c *gin.Context) {
	exercises, err := h.exerciseService.SearchExercises(c.Request.Context(), parseSearchFilter(c))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExercise godoc
// @Summary Get one exercise by name
// @Tags Exercises
// @Produce json
// @Param name path string true "Exercise name, case-insensitive"
// @Success 200 {object} domain.Exercise
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{name} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.exerciseService.GetExerciseByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// GetFacets godoc
// @Summary Distinct categories, equipment and primary muscles of the catalog
// @Tags Exercises
// @Produce json
// @Success 200 {object} domain.Facets
// @Router /facets [get]
func (h *ExerciseHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, h.exerciseService.GetFacets(c.Request.Context()))
}

func (h *ExerciseHandler) GetCatalogStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.exerciseService.CatalogStatus(c.Request.Context()))
}

// respondWithServiceError maps service and catalog errors to HTTP status codes.
func respondWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoRepository), errors.Is(err, service.ErrStorageDisabled):
		abortWithError(c, http.StatusNotImplemented, err.Error())
	case errors.Is(err, catalog.ErrCatalogUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, "Exercise catalog is unavailable")
	default:
		log.Errorf("%s %s: %s", c.Request.Method, c.Request.URL.Path, err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
