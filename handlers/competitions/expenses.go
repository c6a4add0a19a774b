package competitions

import (
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/permissions"

	"github.com/gin-gonic/gin"
)

// AddExpense records an organizational expense
// @Summary Add an expense
// @Description Record an organizational expense against the competition
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param AddExpenseRequest body AddExpenseRequest true "Expense data"
// @Success 201 {object} models.Expense
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /competitions/{id}/expenses [post]
// @Security Bearer
func AddExpense(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.CanManageCompetitions(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := services.AddExpense(c.Param("id"), req.Description, req.Amount, &user.ID)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// GetBalance summarizes fees collected against expenses
// @Summary Get the competition balance
// @Description Get the financial summary of one competition
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} services.CompetitionBalance
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/balance [get]
// @Security Bearer
func GetBalance(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	if !permissions.CanManageCompetitions(user) {
		respondWithError(c, http.StatusUnauthorized, ErrNoPermissionManage)
		return
	}

	balance, err := services.GetCompetitionBalance(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, balance)
}
