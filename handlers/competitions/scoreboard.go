package competitions

import (
	"net/http"

	"api/services"

	"github.com/gin-gonic/gin"
)

// GetScoreboard retrieves the live standings of a competition
// @Summary Get the competition scoreboard
// @Description Get current standings grouped by category
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} services.Scoreboard
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/scoreboard [get]
// @Security Bearer
func GetScoreboard(c *gin.Context) {
	board, err := services.BuildScoreboard(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}
	c.JSON(http.StatusOK, board)
}

// ExportScoreboardExcel exports the competition results as a spreadsheet
// @Summary Export results as XLSX
// @Description Download the official results spreadsheet, one sheet per category
// @Tags Competitions
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Competition ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/export [get]
// @Security Bearer
func ExportScoreboardExcel(c *gin.Context) {
	buffer, filename, err := services.ExportScoreboardXLSX(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buffer.Bytes())
}
