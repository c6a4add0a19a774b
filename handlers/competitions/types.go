package competitions

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrCompetitionNotFound     = "Competition not found"
	ErrNoPermissionManage      = "User does not have permission to manage competitions"
	ErrFailedFetchCompetitions = "Failed to fetch competitions"
	ErrFailedCreateCompetition = "Failed to create competition"
	ErrFailedUpdateCompetition = "Failed to update competition"
	ErrInvalidRequest          = "Invalid request data"
)

// CategoryFeeRequest attaches one category with its entry fee
type CategoryFeeRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	Fee        float64 `json:"fee"`
}

// CreateCompetitionRequest model for creating a competition
type CreateCompetitionRequest struct {
	Name            string               `json:"name" binding:"required"`
	Description     string               `json:"description"`
	StartDate       string               `json:"start_date" binding:"required"`
	EndDate         string               `json:"end_date" binding:"required"`
	Type            string               `json:"type" binding:"required"`
	BaseFee         float64              `json:"base_fee"`
	CallNumber      string               `json:"call_number"`
	CompetitionTime string               `json:"competition_time"`
	RangeID         *string              `json:"range_id"`
	Categories      []CategoryFeeRequest `json:"categories"`
	JudgeIDs        []string             `json:"judge_ids"`
}

// UpdateCompetitionRequest model for updating a competition
type UpdateCompetitionRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	BaseFee         *float64 `json:"base_fee"`
	CallNumber      string  `json:"call_number"`
	CompetitionTime string  `json:"competition_time"`
	RangeID         *string `json:"range_id"`
}

// AddExpenseRequest model for recording an expense
type AddExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// parseDate parses the yyyy-mm-dd wire format used for all date fields
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
