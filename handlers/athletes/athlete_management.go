package athletes

import (
	"log"
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils"
	"api/utils/permissions"

	"github.com/gin-gonic/gin"
)

// GetAllAthletes retrieves all athletes, optionally filtered by status
// @Summary Get all athletes
// @Description Get all athletes with their club, optionally filtered by status
// @Tags Athletes
// @Accept json
// @Produce json
// @Param status query string false "Athlete status filter"
// @Success 200 {array} models.Athlete
// @Failure 401 {object} map[string]string
// @Router /athletes [get]
// @Security Bearer
func GetAllAthletes(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	query := database.DB.Preload("Club")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	// Club delegates only see their own roster
	if permissions.IsClub(user) {
		var club models.Club
		if err := database.DB.Where("user_id = ?", user.ID).First(&club).Error; err == nil {
			query = query.Where("club_id = ?", club.ID)
		}
	}

	var athletes []models.Athlete
	if err := query.Find(&athletes).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchAthletes)
		return
	}

	c.JSON(http.StatusOK, athletes)
}

// GetAthlete retrieves one athlete with documents and weapons
// @Summary Get an athlete
// @Description Get the full file of one athlete
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} models.Athlete
// @Failure 404 {object} map[string]string
// @Router /athletes/{id} [get]
// @Security Bearer
func GetAthlete(c *gin.Context) {
	var athlete models.Athlete
	if err := database.DB.
		Preload("Club").
		Preload("Documents").
		Preload("Weapons").
		Where("id = ?", c.Param("id")).
		First(&athlete).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrAthleteNotFound)
		return
	}
	c.JSON(http.StatusOK, athlete)
}

// CreateAthlete submits a new affiliation request
// @Summary Create an athlete
// @Description Submit an affiliation request, pending admin approval
// @Tags Athletes
// @Accept json
// @Produce json
// @Param CreateAthleteRequest body CreateAthleteRequest true "Athlete data"
// @Success 201 {object} models.Athlete
// @Failure 400 {object} map[string]string
// @Router /athletes [post]
// @Security Bearer
func CreateAthlete(c *gin.Context) {
	var req CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid birth_date, expected yyyy-mm-dd")
		return
	}

	var existing int64
	database.DB.Model(&models.Athlete{}).Where("ci = ?", req.CI).Count(&existing)
	if existing > 0 {
		respondWithError(c, http.StatusConflict, ErrCIAlreadyRegistered)
		return
	}

	athlete := models.Athlete{
		FirstName:       req.FirstName,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		CI:              req.CI,
		BirthDate:       birthDate,
		Gender:          req.Gender,
		Department:      req.Department,
		Phone:           req.Phone,
		Email:           req.Email,
		Status:          models.AthletePending,
		ClubID:          req.ClubID,
	}
	if err := database.DB.Create(&athlete).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateAthlete)
		return
	}

	c.JSON(http.StatusCreated, athlete)
}

// ApproveAthlete decides a pending affiliation request
// @Summary Approve or reject an athlete
// @Description Approve a pending athlete, creating their portal account, or reject them
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param ApproveAthleteRequest body ApproveAthleteRequest true "Decision"
// @Success 200 {object} models.Athlete
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /athletes/{id}/approve [put]
// @Security Bearer
func ApproveAthlete(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req ApproveAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var athlete models.Athlete
	if err := database.DB.Where("id = ?", c.Param("id")).First(&athlete).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrAthleteNotFound)
		return
	}

	if !req.Approve {
		athlete.Status = models.AthleteRejected
		athlete.AdminNotes = req.AdminNotes
		if err := database.DB.Save(&athlete).Error; err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateAthlete)
			return
		}
		c.JSON(http.StatusOK, athlete)
		return
	}

	// Approval creates the athlete's portal account with a temporary
	// password mailed to them
	password, hashed, err := utils.CreateDefaultPassword()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to generate credentials")
		return
	}

	account := models.User{
		Username: athlete.CI,
		Email:    athlete.Email,
		Password: hashed,
		Role:     models.RoleClub,
		IsActive: true,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create user account")
		return
	}

	athlete.Status = models.AthleteActive
	athlete.AdminNotes = req.AdminNotes
	athlete.UserID = &account.ID
	if err := database.DB.Save(&athlete).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateAthlete)
		return
	}

	if account.Email != "" {
		emailService := services.NewEmailService()
		if err := emailService.SendCredentialsEmail(account.Email, athlete.DisplayName(), password); err != nil {
			log.Printf("Failed to send credentials email to %s: %v", account.Email, err)
		}
	}

	c.JSON(http.StatusOK, athlete)
}

// SuspendAthlete suspends an active athlete
// @Summary Suspend an athlete
// @Description Suspend an active athlete, blocking further registrations
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} models.Athlete
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /athletes/{id}/suspend [put]
// @Security Bearer
func SuspendAthlete(c *gin.Context) {
	setAthleteStatus(c, models.AthleteSuspended)
}

// ReactivateAthlete reactivates a suspended athlete
// @Summary Reactivate an athlete
// @Description Move a suspended athlete back to active
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} models.Athlete
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /athletes/{id}/reactivate [put]
// @Security Bearer
func ReactivateAthlete(c *gin.Context) {
	setAthleteStatus(c, models.AthleteActive)
}

func setAthleteStatus(c *gin.Context, status string) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var athlete models.Athlete
	if err := database.DB.Where("id = ?", c.Param("id")).First(&athlete).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrAthleteNotFound)
		return
	}

	athlete.Status = status
	if err := database.DB.Save(&athlete).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateAthlete)
		return
	}
	c.JSON(http.StatusOK, athlete)
}
