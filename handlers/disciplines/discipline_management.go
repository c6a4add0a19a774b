package disciplines

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils/permissions"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrDisciplineNotFound = "Discipline not found"
	ErrNoPermissionManage = "User does not have permission to manage disciplines"
	ErrNameInUse          = "A discipline with this name already exists"
)

// CreateDisciplineRequest model for creating a discipline
type CreateDisciplineRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategoryRequest model for adding a category to a discipline
type CreateCategoryRequest struct {
	Name            string `json:"name" binding:"required"`
	RequiredCaliber string `json:"required_caliber"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// GetAllDisciplines retrieves all disciplines with their categories
// @Summary Get all disciplines
// @Description Get all disciplines with their categories
// @Tags Disciplines
// @Accept json
// @Produce json
// @Success 200 {array} models.Discipline
// @Failure 401 {object} map[string]string
// @Router /disciplines [get]
// @Security Bearer
func GetAllDisciplines(c *gin.Context) {
	var disciplines []models.Discipline
	if err := database.DB.Preload("Categories").Order("name ASC").
		Find(&disciplines).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch disciplines")
		return
	}
	c.JSON(http.StatusOK, disciplines)
}

// CreateDiscipline creates a new discipline
// @Summary Create a discipline
// @Description Create a new shooting discipline
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param CreateDisciplineRequest body CreateDisciplineRequest true "Discipline data"
// @Success 201 {object} models.Discipline
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /disciplines [post]
// @Security Bearer
func CreateDiscipline(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req CreateDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing int64
	database.DB.Model(&models.Discipline{}).Where("name = ?", req.Name).Count(&existing)
	if existing > 0 {
		respondWithError(c, http.StatusConflict, ErrNameInUse)
		return
	}

	discipline := models.Discipline{Name: req.Name}
	if err := database.DB.Create(&discipline).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create discipline")
		return
	}
	c.JSON(http.StatusCreated, discipline)
}

// CreateCategory adds a category to a discipline
// @Summary Create a category
// @Description Add a category to one discipline
// @Tags Disciplines
// @Accept json
// @Produce json
// @Param id path string true "Discipline ID"
// @Param CreateCategoryRequest body CreateCategoryRequest true "Category data"
// @Success 201 {object} models.Category
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /disciplines/{id}/categories [post]
// @Security Bearer
func CreateCategory(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	disciplineID := c.Param("id")
	var count int64
	database.DB.Model(&models.Discipline{}).Where("id = ?", disciplineID).Count(&count)
	if count == 0 {
		respondWithError(c, http.StatusNotFound, ErrDisciplineNotFound)
		return
	}

	category := models.Category{
		Name:            req.Name,
		DisciplineID:    disciplineID,
		RequiredCaliber: req.RequiredCaliber,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}
