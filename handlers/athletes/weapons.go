package athletes

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

// AddWeapon registers a weapon on an athlete's file
// @Summary Add a weapon
// @Description Register a weapon on the athlete's file
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param AddWeaponRequest body AddWeaponRequest true "Weapon data"
// @Success 201 {object} models.Weapon
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /athletes/{id}/weapons [post]
// @Security Bearer
func AddWeapon(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	var req AddWeaponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	athleteID := c.Param("id")
	var count int64
	database.DB.Model(&models.Athlete{}).Where("id = ?", athleteID).Count(&count)
	if count == 0 {
		respondWithError(c, http.StatusNotFound, ErrAthleteNotFound)
		return
	}

	inspection, err := parseDatePtr(req.InspectionDate)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid inspection_date, expected yyyy-mm-dd")
		return
	}

	weapon := models.Weapon{
		AthleteID:      athleteID,
		Type:           req.Type,
		Caliber:        req.Caliber,
		Brand:          req.Brand,
		Model:          req.Model,
		SerialNumber:   req.SerialNumber,
		InspectionDate: inspection,
		FilePath:       req.FilePath,
	}
	if err := database.DB.Create(&weapon).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create weapon")
		return
	}

	c.JSON(http.StatusCreated, weapon)
}

// GetWeapons lists the weapons on an athlete's file
// @Summary Get athlete weapons
// @Description List all weapons of one athlete
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {array} models.Weapon
// @Failure 401 {object} map[string]string
// @Router /athletes/{id}/weapons [get]
// @Security Bearer
func GetWeapons(c *gin.Context) {
	var weapons []models.Weapon
	if err := database.DB.Where("athlete_id = ?", c.Param("id")).
		Find(&weapons).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch weapons")
		return
	}
	c.JSON(http.StatusOK, weapons)
}

// CreateWeaponLoan lends a weapon to another athlete for one competition
// @Summary Create a weapon loan
// @Description Authorize another athlete to compete with this weapon in one competition
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param weapon_id path string true "Weapon ID"
// @Param CreateLoanRequest body CreateLoanRequest true "Loan data"
// @Success 201 {object} models.WeaponLoan
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /athletes/{id}/weapons/{weapon_id}/loans [post]
// @Security Bearer
func CreateWeaponLoan(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	var req CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var weapon models.Weapon
	if err := database.DB.
		Where("id = ? AND athlete_id = ?", c.Param("weapon_id"), c.Param("id")).
		First(&weapon).Error; err != nil {
		respondWithError(c, http.StatusNotFound, "Weapon not found")
		return
	}
	if weapon.AthleteID == req.AthleteID {
		respondWithError(c, http.StatusBadRequest, "Cannot loan a weapon to its owner")
		return
	}
	if !services.CompetitionExists(req.CompetitionID) {
		respondWithError(c, http.StatusNotFound, "Competition not found")
		return
	}

	loan := models.WeaponLoan{
		WeaponID:      weapon.ID,
		AthleteID:     req.AthleteID,
		CompetitionID: req.CompetitionID,
		IsActive:      true,
	}
	if err := database.DB.Create(&loan).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create loan")
		return
	}

	c.JSON(http.StatusCreated, loan)
}

// RevokeWeaponLoan deactivates a loan before the competition
// @Summary Revoke a weapon loan
// @Description Deactivate an existing loan
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param loan_id path string true "Loan ID"
// @Success 200 {object} models.WeaponLoan
// @Failure 404 {object} map[string]string
// @Router /athletes/{id}/loans/{loan_id}/revoke [put]
// @Security Bearer
func RevokeWeaponLoan(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	var loan models.WeaponLoan
	if err := database.DB.Where("id = ?", c.Param("loan_id")).First(&loan).Error; err != nil {
		respondWithError(c, http.StatusNotFound, "Loan not found")
		return
	}

	loan.IsActive = false
	if err := database.DB.Save(&loan).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to revoke loan")
		return
	}
	c.JSON(http.StatusOK, loan)
}
