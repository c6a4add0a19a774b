package rankings

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"api/database"
	"api/metrics"
	"api/services"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrInvalidYear         = "Invalid year parameter"
	ErrFailedComputeRanks  = "Failed to compute rankings"
	ErrRecordNotFound      = "No record for this discipline and category"
	ErrMissingGroupFilters = "discipline_id and category_id query parameters are required"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// GetAnnualRankings computes the season standings for a year
// @Summary Get annual rankings
// @Description Get athlete rankings per discipline and the club table for one season. Cached until a competition of the season is finalized
// @Tags Rankings
// @Accept json
// @Produce json
// @Param year query int true "Season year"
// @Success 200 {object} services.AnnualRankings
// @Failure 400 {object} map[string]string
// @Router /rankings/annual [get]
// @Security Bearer
func GetAnnualRankings(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		respondWithError(c, http.StatusBadRequest, ErrInvalidYear)
		return
	}

	ctx := c.Request.Context()
	if cached, ok := database.GetCachedRankings(ctx, year); ok {
		metrics.RankingCacheHits.Inc()
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}
	metrics.RankingCacheMisses.Inc()

	rankings, err := services.ComputeAnnualRankings(year)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedComputeRanks)
		return
	}

	if payload, err := json.Marshal(rankings); err == nil {
		database.SetCachedRankings(ctx, year, string(payload))
	}

	c.JSON(http.StatusOK, rankings)
}

// GetCurrentRecord retrieves the standing record of a group
// @Summary Get the current record
// @Description Get the current best score of one discipline and category pair
// @Tags Rankings
// @Accept json
// @Produce json
// @Param discipline_id query string true "Discipline ID"
// @Param category_id query string true "Category ID"
// @Success 200 {object} models.Record
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rankings/records/current [get]
// @Security Bearer
func GetCurrentRecord(c *gin.Context) {
	disciplineID := c.Query("discipline_id")
	categoryID := c.Query("category_id")
	if disciplineID == "" || categoryID == "" {
		respondWithError(c, http.StatusBadRequest, ErrMissingGroupFilters)
		return
	}

	record, err := services.GetCurrentRecord(disciplineID, categoryID)
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrRecordNotFound)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetRecordHistory retrieves the supersession chain of a group
// @Summary Get the record history
// @Description Get the full supersession chain, newest first
// @Tags Rankings
// @Accept json
// @Produce json
// @Param discipline_id query string true "Discipline ID"
// @Param category_id query string true "Category ID"
// @Success 200 {array} models.Record
// @Failure 400 {object} map[string]string
// @Router /rankings/records/history [get]
// @Security Bearer
func GetRecordHistory(c *gin.Context) {
	disciplineID := c.Query("discipline_id")
	categoryID := c.Query("category_id")
	if disciplineID == "" || categoryID == "" {
		respondWithError(c, http.StatusBadRequest, ErrMissingGroupFilters)
		return
	}

	start := time.Now()
	history, err := services.RecordHistory(disciplineID, categoryID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch record history")
		return
	}
	metrics.RecordDBOperation("record_history", "records", start)
	c.JSON(http.StatusOK, history)
}
