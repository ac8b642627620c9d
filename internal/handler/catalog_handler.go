package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnhub/learnhub-api/internal/models"
	"github.com/learnhub/learnhub-api/internal/service"
	"github.com/learnhub/learnhub-api/pkg/response"
)

// CatalogHandler serves the course catalog, categories, learning paths and
// instructor directory.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ListCourses godoc
// @Summary List courses
// @Description List courses filtered by category, level and search term
// @Tags Catalog
// @Produce json
// @Param category query string false "Category name, empty means all"
// @Param level query string false "Difficulty level, 'All Levels' or empty means all"
// @Param search query string false "Case-insensitive search over title, description and skills"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	criteria := models.FilterCriteria{
		Category:   c.Query("category"),
		Level:      c.Query("level"),
		SearchTerm: c.Query("search"),
	}

	courses := h.service.Courses(c.Request.Context(), criteria)
	response.JSON(c, http.StatusOK, courses, map[string]interface{}{"total": len(courses)})
}

// GetCourse godoc
// @Summary Get course
// @Description Fetch a single course by id
// @Tags Catalog
// @Produce json
// @Param id path string true "Course id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id} [get]
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := h.service.Course(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// ListCategories godoc
// @Summary List categories
// @Description Fixed category list in display order
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories := h.service.Categories()
	response.JSON(c, http.StatusOK, categories, nil)
}

// ListLearningPaths godoc
// @Summary List learning paths
// @Description Learning paths with their course references resolved
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /learning-paths [get]
func (h *CatalogHandler) ListLearningPaths(c *gin.Context) {
	paths := h.service.LearningPaths()
	response.JSON(c, http.StatusOK, paths, nil)
}

// GetLearningPath godoc
// @Summary Get learning path
// @Description Fetch a single resolved learning path by id
// @Tags Catalog
// @Produce json
// @Param id path string true "Learning path id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /learning-paths/{id} [get]
func (h *CatalogHandler) GetLearningPath(c *gin.Context) {
	path, err := h.service.LearningPath(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, path, nil)
}

// ListInstructors godoc
// @Summary List instructors
// @Description Instructor directory
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /instructors [get]
func (h *CatalogHandler) ListInstructors(c *gin.Context) {
	instructors := h.service.Instructors()
	response.JSON(c, http.StatusOK, instructors, nil)
}
