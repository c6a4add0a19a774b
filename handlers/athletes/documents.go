package athletes

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"

	"github.com/gin-gonic/gin"
)

// AddDocument attaches a compliance document to an athlete's file
// @Summary Add a document
// @Description Attach a compliance document to the athlete's file
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param AddDocumentRequest body AddDocumentRequest true "Document data"
// @Success 201 {object} models.Document
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /athletes/{id}/documents [post]
// @Security Bearer
func AddDocument(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	var req AddDocumentRequest
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

	expiration, err := parseDatePtr(req.ExpirationDate)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid expiration_date, expected yyyy-mm-dd")
		return
	}

	document := models.Document{
		AthleteID:      athleteID,
		DocumentType:   req.DocumentType,
		FilePath:       req.FilePath,
		ExpirationDate: expiration,
	}
	if err := database.DB.Create(&document).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create document")
		return
	}

	c.JSON(http.StatusCreated, document)
}

// GetDocuments lists the documents on an athlete's file
// @Summary Get athlete documents
// @Description List all compliance documents of one athlete
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {array} models.Document
// @Failure 401 {object} map[string]string
// @Router /athletes/{id}/documents [get]
// @Security Bearer
func GetDocuments(c *gin.Context) {
	var documents []models.Document
	if err := database.DB.Where("athlete_id = ?", c.Param("id")).
		Find(&documents).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}
	c.JSON(http.StatusOK, documents)
}

// DeleteDocument removes a document from an athlete's file
// @Summary Delete a document
// @Description Remove one document from the athlete's file
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param document_id path string true "Document ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /athletes/{id}/documents/{document_id} [delete]
// @Security Bearer
func DeleteDocument(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return
	}

	result := database.DB.
		Where("id = ? AND athlete_id = ?", c.Param("document_id"), c.Param("id")).
		Delete(&models.Document{})
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to delete document")
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, "Document not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
