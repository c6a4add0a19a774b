package registrations

import (
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/permissions"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrRegistrationNotFound = "Registration not found"
	ErrNoPermissionManage   = "User does not have permission to manage registrations"
	ErrInvalidRequest       = "Invalid request data"
)

// CreateRegistrationRequest model for enrolling an athlete
type CreateRegistrationRequest struct {
	AthleteID     string                  `json:"athlete_id" binding:"required"`
	CompetitionID string                  `json:"competition_id" binding:"required"`
	ClubID        *string                 `json:"club_id"`
	IsGuest       bool                    `json:"is_guest"`
	Entries       []services.EntryRequest `json:"entries" binding:"required"`
}

// RecordPaymentRequest model for registering a payment
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Notes  string  `json:"notes"`
}

// ReassignWeaponRequest model for swapping an entry's weapon
type ReassignWeaponRequest struct {
	WeaponID *string `json:"weapon_id"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// CreateRegistration enrolls an athlete into a competition
// @Summary Create a registration
// @Description Enroll an athlete with one or more category entries. All entries must pass eligibility or the whole registration is rejected
// @Tags Registrations
// @Accept json
// @Produce json
// @Param CreateRegistrationRequest body CreateRegistrationRequest true "Registration data"
// @Success 201 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /registrations [post]
// @Security Bearer
func CreateRegistration(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.CanRegisterAthletes(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	registration, err := services.CreateRegistration(req.AthleteID, req.CompetitionID,
		req.ClubID, req.Entries, req.IsGuest)
	if err != nil {
		status := http.StatusBadRequest
		if services.IsEligibilityError(err) {
			status = http.StatusUnprocessableEntity
		}
		respondWithError(c, status, err.Error())
		return
	}

	c.JSON(http.StatusCreated, registration)
}

// ApproveRegistration approves a pending registration
// @Summary Approve a registration
// @Description Approve a pending registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} models.Registration
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /registrations/{id}/approve [put]
// @Security Bearer
func ApproveRegistration(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	registration, err := services.ApproveRegistration(c.Param("id"), user.ID)
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrRegistrationNotFound)
		return
	}
	c.JSON(http.StatusOK, registration)
}

// RejectRegistration rejects a pending registration
// @Summary Reject a registration
// @Description Reject a pending registration
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} models.Registration
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /registrations/{id}/reject [put]
// @Security Bearer
func RejectRegistration(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	registration, err := services.RejectRegistration(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrRegistrationNotFound)
		return
	}
	c.JSON(http.StatusOK, registration)
}

// GetCompetitionRegistrations lists registrations of one competition
// @Summary Get competition registrations
// @Description List all registrations of one competition with their entries
// @Tags Registrations
// @Accept json
// @Produce json
// @Param competition_id query string true "Competition ID"
// @Success 200 {array} models.Registration
// @Failure 400 {object} map[string]string
// @Router /registrations [get]
// @Security Bearer
func GetCompetitionRegistrations(c *gin.Context) {
	competitionID := c.Query("competition_id")
	if competitionID == "" {
		respondWithError(c, http.StatusBadRequest, "competition_id query parameter is required")
		return
	}

	registrations, err := services.GetCompetitionRegistrations(competitionID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}
	c.JSON(http.StatusOK, registrations)
}

// RecordPayment registers a payment against a registration
// @Summary Record a payment
// @Description Add a paid amount against the registration fee
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param RecordPaymentRequest body RecordPaymentRequest true "Payment data"
// @Success 200 {object} models.Registration
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /registrations/{id}/payments [post]
// @Security Bearer
func RecordPayment(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsAdmin(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	registration, err := services.RecordPayment(c.Param("id"), req.Amount, req.Notes)
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrRegistrationNotFound)
		return
	}
	c.JSON(http.StatusOK, registration)
}

// ReassignEntryWeapon swaps the weapon of an unscored entry
// @Summary Reassign an entry weapon
// @Description Swap the weapon of an entry before any round is scored
// @Tags Registrations
// @Accept json
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Param ReassignWeaponRequest body ReassignWeaponRequest true "Weapon data"
// @Success 200 {object} models.Entry
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /registrations/entries/{entry_id}/weapon [put]
// @Security Bearer
func ReassignEntryWeapon(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	var req ReassignWeaponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := services.ReassignEntryWeapon(c.Param("entry_id"), req.WeaponID)
	if err != nil {
		status := http.StatusBadRequest
		if services.IsEligibilityError(err) {
			status = http.StatusUnprocessableEntity
		}
		respondWithError(c, status, err.Error())
		return
	}
	c.JSON(http.StatusOK, entry)
}
