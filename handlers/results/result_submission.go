package results

import (
	"errors"
	"net/http"

	"api/config"
	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/permissions"

	"github.com/gin-gonic/gin"
)

// service is set by RegisterRoutes and shared by all submissions
var service *services.ResultsService

// throttle guards repeated submissions per registration
var throttle = newSubmissionThrottle(config.DefaultRateLimitConfig)

// SubmitResult records a scored round for a registration entry
// @Summary Submit a scored round
// @Description Compute and persist the score of a raw shot payload, updating records and broadcasting the live update
// @Tags Results
// @Accept json
// @Produce json
// @Param SubmitResultRequest body SubmitResultRequest true "Round data"
// @Success 201 {object} models.Result
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /results [post]
// @Security Bearer
func SubmitResult(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsJudge(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionScore)
		return
	}

	var req SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !throttle.Allow(req.RegistrationID) {
		respondWithError(c, http.StatusTooManyRequests, ErrSubmissionCooldown)
		return
	}

	// A judge row may be linked to the submitting account. Admins can
	// record without one
	var judge *models.Judge
	var judgeRow models.Judge
	if err := database.DB.Where("user_id = ?", user.ID).First(&judgeRow).Error; err == nil {
		judge = &judgeRow
	}

	result, err := service.RecordResult(req.RegistrationID, req.EntryID,
		req.RoundLabel, req.RawDetails, judge)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCompetitionClosed):
			respondWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrNoEntries):
			respondWithError(c, http.StatusBadRequest, err.Error())
		default:
			respondWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// DisqualifyResult flags a scored round as disqualified
// @Summary Disqualify a round
// @Description Flag a scored round as disqualified with a reason
// @Tags Results
// @Accept json
// @Produce json
// @Param id path string true "Result ID"
// @Param DisqualifyRequest body DisqualifyRequest true "Reason"
// @Success 200 {object} models.Result
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /results/{id}/disqualify [put]
// @Security Bearer
func DisqualifyResult(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.IsJudge(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionScore)
		return
	}

	var req DisqualifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.DisqualifyResult(c.Param("id"), req.Reason)
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrResultNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// VerifyResult resolves a certificate verification code
// @Summary Verify a result
// @Description Resolve a verification code printed on a certificate to the round that produced it
// @Tags Results
// @Accept json
// @Produce json
// @Param code path string true "Verification code"
// @Success 200 {object} models.Result
// @Failure 404 {object} map[string]string
// @Router /results/verify/{code} [get]
func VerifyResult(c *gin.Context) {
	result, err := services.GetResultByVerificationCode(c.Param("code"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrResultNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRegistrationResults lists the rounds of one registration
// @Summary Get registration results
// @Description List all scored rounds of one registration
// @Tags Results
// @Accept json
// @Produce json
// @Param registration_id path string true "Registration ID"
// @Success 200 {array} models.Result
// @Failure 401 {object} map[string]string
// @Router /results/registration/{registration_id} [get]
// @Security Bearer
func GetRegistrationResults(c *gin.Context) {
	results, err := services.GetRegistrationResults(c.Param("registration_id"))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch results")
		return
	}
	c.JSON(http.StatusOK, results)
}
