package clubs

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
	ErrClubNotFound       = "Club not found"
	ErrNoPermissionManage = "User does not have permission to manage clubs"
	ErrFailedFetchClubs   = "Failed to fetch clubs"
	ErrNameInUse          = "A club with this name already exists"
)

// CreateClubRequest model for creating a club
type CreateClubRequest struct {
	Name       string  `json:"name" binding:"required"`
	Department string  `json:"department"`
	Contact    string  `json:"contact"`
	UserID     *string `json:"user_id"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// GetAllClubs retrieves all affiliated clubs
// @Summary Get all clubs
// @Description Get all affiliated clubs
// @Tags Clubs
// @Accept json
// @Produce json
// @Success 200 {array} models.Club
// @Failure 401 {object} map[string]string
// @Router /clubs [get]
// @Security Bearer
func GetAllClubs(c *gin.Context) {
	var clubs []models.Club
	if err := database.DB.Order("name ASC").Find(&clubs).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchClubs)
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// GetClub retrieves one club
// @Summary Get a club
// @Description Get one club by id
// @Tags Clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} models.Club
// @Failure 404 {object} map[string]string
// @Router /clubs/{id} [get]
// @Security Bearer
func GetClub(c *gin.Context) {
	var club models.Club
	if err := database.DB.Where("id = ?", c.Param("id")).First(&club).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrClubNotFound)
		return
	}
	c.JSON(http.StatusOK, club)
}

// CreateClub creates a new affiliated club
// @Summary Create a club
// @Description Create a new affiliated club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param CreateClubRequest body CreateClubRequest true "Club data"
// @Success 201 {object} models.Club
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /clubs [post]
// @Security Bearer
func CreateClub(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing int64
	database.DB.Model(&models.Club{}).Where("name = ?", req.Name).Count(&existing)
	if existing > 0 {
		respondWithError(c, http.StatusConflict, ErrNameInUse)
		return
	}

	club := models.Club{
		Name:       req.Name,
		Department: req.Department,
		Contact:    req.Contact,
		UserID:     req.UserID,
	}
	if err := database.DB.Create(&club).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create club")
		return
	}

	c.JSON(http.StatusCreated, club)
}

// UpdateClub updates a club's details
// @Summary Update a club
// @Description Update one club's details
// @Tags Clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Param CreateClubRequest body CreateClubRequest true "Club data"
// @Success 200 {object} models.Club
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clubs/{id} [put]
// @Security Bearer
func UpdateClub(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var club models.Club
	if err := database.DB.Where("id = ?", c.Param("id")).First(&club).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrClubNotFound)
		return
	}

	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	club.Name = req.Name
	club.Department = req.Department
	club.Contact = req.Contact
	if req.UserID != nil {
		club.UserID = req.UserID
	}
	if err := database.DB.Save(&club).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to update club")
		return
	}

	c.JSON(http.StatusOK, club)
}
