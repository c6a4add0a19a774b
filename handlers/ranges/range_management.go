package ranges

import (
	"net/http"
	"time"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils/permissions"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrRangeNotFound      = "Shooting range not found"
	ErrNoPermissionManage = "User does not have permission to manage ranges"
)

// CreateRangeRequest model for registering a shooting range
type CreateRangeRequest struct {
	Name              string  `json:"name" binding:"required"`
	Address           string  `json:"address"`
	LicenseNumber     string  `json:"license_number"`
	LicenseExpiration *string `json:"license_expiration"`
}

// CreateJudgeRequest model for registering a judge
type CreateJudgeRequest struct {
	FullName      string  `json:"full_name" binding:"required"`
	LicenseNumber string  `json:"license_number" binding:"required"`
	UserID        *string `json:"user_id"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// GetAllRanges retrieves all shooting ranges
// @Summary Get all ranges
// @Description Get all licensed shooting ranges
// @Tags Ranges
// @Accept json
// @Produce json
// @Success 200 {array} models.ShootingRange
// @Failure 401 {object} map[string]string
// @Router /ranges [get]
// @Security Bearer
func GetAllRanges(c *gin.Context) {
	var ranges []models.ShootingRange
	if err := database.DB.Order("name ASC").Find(&ranges).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch ranges")
		return
	}
	c.JSON(http.StatusOK, ranges)
}

// CreateRange registers a shooting range
// @Summary Create a range
// @Description Register a licensed shooting range
// @Tags Ranges
// @Accept json
// @Produce json
// @Param CreateRangeRequest body CreateRangeRequest true "Range data"
// @Success 201 {object} models.ShootingRange
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /ranges [post]
// @Security Bearer
func CreateRange(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req CreateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var expiration *time.Time
	if req.LicenseExpiration != nil && *req.LicenseExpiration != "" {
		parsed, err := time.Parse("2006-01-02", *req.LicenseExpiration)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "Invalid license_expiration, expected yyyy-mm-dd")
			return
		}
		expiration = &parsed
	}

	shootingRange := models.ShootingRange{
		Name:              req.Name,
		Address:           req.Address,
		LicenseNumber:     req.LicenseNumber,
		LicenseExpiration: expiration,
	}
	if err := database.DB.Create(&shootingRange).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create range")
		return
	}
	c.JSON(http.StatusCreated, shootingRange)
}

// GetAllJudges retrieves all registered judges
// @Summary Get all judges
// @Description Get all certified judges
// @Tags Ranges
// @Accept json
// @Produce json
// @Success 200 {array} models.Judge
// @Failure 401 {object} map[string]string
// @Router /judges [get]
// @Security Bearer
func GetAllJudges(c *gin.Context) {
	var judges []models.Judge
	if err := database.DB.Order("full_name ASC").Find(&judges).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch judges")
		return
	}
	c.JSON(http.StatusOK, judges)
}

// CreateJudge registers a certified judge
// @Summary Create a judge
// @Description Register a certified judge, optionally linked to a user account
// @Tags Ranges
// @Accept json
// @Produce json
// @Param CreateJudgeRequest body CreateJudgeRequest true "Judge data"
// @Success 201 {object} models.Judge
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /judges [post]
// @Security Bearer
func CreateJudge(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req CreateJudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	judge := models.Judge{
		FullName:      req.FullName,
		LicenseNumber: req.LicenseNumber,
		UserID:        req.UserID,
	}
	if err := database.DB.Create(&judge).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create judge")
		return
	}
	c.JSON(http.StatusCreated, judge)
}
