package athletes

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrAthleteNotFound     = "Athlete not found"
	ErrNoPermissionManage  = "User does not have permission to manage athletes"
	ErrFailedFetchAthletes = "Failed to fetch athletes"
	ErrFailedCreateAthlete = "Failed to create athlete"
	ErrFailedUpdateAthlete = "Failed to update athlete"
	ErrCIAlreadyRegistered = "An athlete with this CI already exists"
	ErrInvalidRequest      = "Invalid request data"
)

// CreateAthleteRequest model for the affiliation request
type CreateAthleteRequest struct {
	FirstName       string  `json:"first_name" binding:"required"`
	PaternalSurname string  `json:"paternal_surname" binding:"required"`
	MaternalSurname string  `json:"maternal_surname"`
	CI              string  `json:"ci" binding:"required"`
	BirthDate       string  `json:"birth_date" binding:"required"`
	Gender          string  `json:"gender"`
	Department      string  `json:"department"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email" binding:"required,email"`
	ClubID          *string `json:"club_id"`
}

// ApproveAthleteRequest model for the admin approval decision
type ApproveAthleteRequest struct {
	Approve    bool   `json:"approve"`
	AdminNotes string `json:"admin_notes"`
}

// AddDocumentRequest model for attaching a compliance document
type AddDocumentRequest struct {
	DocumentType   string  `json:"document_type" binding:"required"`
	FilePath       string  `json:"file_path"`
	ExpirationDate *string `json:"expiration_date"`
}

// AddWeaponRequest model for adding a weapon to the athlete's file
type AddWeaponRequest struct {
	Type           string  `json:"type" binding:"required"`
	Caliber        string  `json:"caliber" binding:"required"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	SerialNumber   string  `json:"serial_number"`
	InspectionDate *string `json:"inspection_date"`
	FilePath       string  `json:"file_path"`
}

// CreateLoanRequest model for lending a weapon for one competition
type CreateLoanRequest struct {
	AthleteID     string `json:"athlete_id" binding:"required"`
	CompetitionID string `json:"competition_id" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// parseDate parses the yyyy-mm-dd wire format used for all date fields
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
