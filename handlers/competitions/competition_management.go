package competitions

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/permissions"

	"github.com/gin-gonic/gin"
)

// GetAllCompetitions retrieves all competitions
// @Summary Get all competitions
// @Description Get all competitions, optionally filtered by status or year
// @Tags Competitions
// @Accept json
// @Produce json
// @Param status query string false "Competition status filter"
// @Param year query int false "Season year filter"
// @Success 200 {array} models.Competition
// @Failure 401 {object} map[string]string
// @Router /competitions [get]
// @Security Bearer
func GetAllCompetitions(c *gin.Context) {
	query := database.DB.Preload("Range").Order("start_date DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("EXTRACT(YEAR FROM start_date) = ?", year)
	}

	var competitions []models.Competition
	if err := query.Find(&competitions).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchCompetitions)
		return
	}
	c.JSON(http.StatusOK, competitions)
}

// GetCompetition retrieves one competition with categories and judges
// @Summary Get a competition
// @Description Get one competition with its categories, judges and range
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [get]
// @Security Bearer
func GetCompetition(c *gin.Context) {
	competition, err := services.GetCompetition(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}
	c.JSON(http.StatusOK, competition)
}

// CreateCompetition creates a competition with its category offer
// @Summary Create a competition
// @Description Create a competition with its categories, fees and judges
// @Tags Competitions
// @Accept json
// @Produce json
// @Param CreateCompetitionRequest body CreateCompetitionRequest true "Competition data"
// @Success 201 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /competitions [post]
// @Security Bearer
func CreateCompetition(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.CanManageCompetitions(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid start_date, expected yyyy-mm-dd")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid end_date, expected yyyy-mm-dd")
		return
	}
	if endDate.Before(startDate) {
		respondWithError(c, http.StatusBadRequest, "end_date cannot precede start_date")
		return
	}

	competition := models.Competition{
		Name:            req.Name,
		Description:     req.Description,
		StartDate:       startDate,
		EndDate:         endDate,
		Type:            req.Type,
		Status:          models.CompetitionUpcoming,
		BaseFee:         req.BaseFee,
		CallNumber:      req.CallNumber,
		CompetitionTime: req.CompetitionTime,
		RangeID:         req.RangeID,
	}
	for _, category := range req.Categories {
		competition.Categories = append(competition.Categories, &models.CompetitionCategory{
			CategoryID: category.CategoryID,
			Fee:        category.Fee,
		})
	}
	if len(req.JudgeIDs) > 0 {
		var judges []*models.Judge
		if err := database.DB.Where("id IN (?)", req.JudgeIDs).Find(&judges).Error; err != nil {
			respondWithError(c, http.StatusBadRequest, "Judge not found")
			return
		}
		competition.Judges = judges
	}

	if err := database.DB.Create(&competition).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateCompetition)
		return
	}

	c.JSON(http.StatusCreated, competition)
}

// UpdateCompetition updates a competition's details
// @Summary Update a competition
// @Description Update one competition's details while it is not finalized
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param UpdateCompetitionRequest body UpdateCompetitionRequest true "Competition data"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [put]
// @Security Bearer
func UpdateCompetition(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.CanManageCompetitions(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var competition models.Competition
	if err := database.DB.Where("id = ?", c.Param("id")).First(&competition).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}
	if competition.IsFinalized() {
		respondWithError(c, http.StatusBadRequest, "Finalized competitions cannot be updated")
		return
	}

	var req UpdateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Name != "" {
		competition.Name = req.Name
	}
	if req.Description != "" {
		competition.Description = req.Description
	}
	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "Invalid start_date, expected yyyy-mm-dd")
			return
		}
		competition.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, "Invalid end_date, expected yyyy-mm-dd")
			return
		}
		competition.EndDate = endDate
	}
	if req.BaseFee != nil {
		competition.BaseFee = *req.BaseFee
	}
	if req.CallNumber != "" {
		competition.CallNumber = req.CallNumber
	}
	if req.CompetitionTime != "" {
		competition.CompetitionTime = req.CompetitionTime
	}
	if req.RangeID != nil {
		competition.RangeID = req.RangeID
	}

	if err := database.DB.Save(&competition).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateCompetition)
		return
	}
	c.JSON(http.StatusOK, competition)
}

// StartCompetition opens an upcoming competition for scoring
// @Summary Start a competition
// @Description Move an upcoming competition into progress
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /competitions/{id}/start [put]
// @Security Bearer
func StartCompetition(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.CanManageCompetitions(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	competition, err := services.StartCompetition(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, competition)
}

// CloseCompetition finalizes a competition
// @Summary Close a competition
// @Description Finalize a competition. No further scores can be recorded afterwards
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /competitions/{id}/close [put]
// @Security Bearer
func CloseCompetition(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.CanManageCompetitions(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	competition, err := services.CloseCompetition(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, competition)
}
