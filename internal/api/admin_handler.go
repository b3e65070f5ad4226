package api

import (
	"alcyxob/exercise-catalog/internal/domain"
	"alcyxob/exercise-catalog/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AdminHandler serves catalog maintenance endpoints.
type AdminHandler struct {
	exerciseService service.ExerciseService
}

func NewAdminHandler(exerciseService service.ExerciseService) *AdminHandler {
	return &AdminHandler{exerciseService: exerciseService}
}

// --- DTOs ---

type ImportExercisesRequest struct {
	Exercises []domain.Exercise `json:"exercises" binding:"required"`
}

type VideoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"` // e.g., "video/mp4"
}

type ConfirmVideoRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

// --- Handler Methods ---

// ReloadCatalog godoc
// @Summary Reload the catalog from its sources
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} catalog.Status
// @Failure 503 {object} gin.H "Every catalog source failed, the previous catalog is still served"
// @Router /admin/catalog/reload [post]
func (h *AdminHandler) ReloadCatalog(c *gin.Context) {
	status, err := h.exerciseService.ReloadCatalog(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	log.Infof("catalog reloaded by %q: %d exercises from %s", getSubjectFromContext(c), status.Count, status.Source)
	c.JSON(http.StatusOK, status)
}

// ImportExercises godoc
// @Summary Replace the remote catalog
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ImportExercisesRequest true "Full exercise list"
// @Success 200 {object} catalog.Status
// @Failure 400 {object} gin.H "Validation error"
// @Failure 501 {object} gin.H "No remote repository configured"
// @Router /admin/exercises/import [post]
func (h *AdminHandler) ImportExercises(c *gin.Context) {
	var req ImportExercisesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	status, err := h.exerciseService.ImportExercises(c.Request.Context(), req.Exercises)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	log.Infof("catalog imported by %q: %d exercises", getSubjectFromContext(c), len(req.Exercises))
	c.JSON(http.StatusOK, status)
}

// RequestVideoUpload godoc
// @Summary Get a presigned URL to upload an exercise video
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Exercise name"
// @Param request body VideoUploadRequest true "Video content type"
// @Success 200 {object} service.UploadURLResponse
// @Router /admin/exercises/{name}/video [post]
func (h *AdminHandler) RequestVideoUpload(c *gin.Context) {
	var req VideoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.exerciseService.CreateVideoUploadURL(c.Request.Context(), c.Param("name"), req.ContentType)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmVideoUpload godoc
// @Summary Attach an uploaded video to an exercise
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Exercise name"
// @Param request body ConfirmVideoRequest true "Object key returned with the upload URL"
// @Success 200 {object} domain.Exercise
// @Router /admin/exercises/{name}/video [put]
func (h *AdminHandler) ConfirmVideoUpload(c *gin.Context) {
	var req ConfirmVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.ConfirmVideoUpload(c.Request.Context(), c.Param("name"), req.ObjectKey)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (h *AdminHandler) GetSnapshotURL(c *gin.Context) {
	url, err := h.exerciseService.SnapshotDownloadURL(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
