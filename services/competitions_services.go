package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"api/database"
	"api/models"

	"gorm.io/gorm"
)

// CompetitionExists reports whether the competition id is known
func CompetitionExists(competitionID string) bool {
	var count int64
	err := database.DB.Model(&models.Competition{}).
		Where("id = ?", competitionID).Count(&count).Error
	if err != nil {
		log.Printf("failed to check competition %s: %v", competitionID, err)
		return false
	}
	return count > 0
}

// GetCompetition loads one competition with its categories and judges
func GetCompetition(competitionID string) (models.Competition, error) {
	var competition models.Competition
	err := database.DB.
		Preload("Categories.Category.Discipline").
		Preload("Judges").
		Preload("Range").
		Where("id = ?", competitionID).
		First(&competition).Error
	return competition, err
}

// StartCompetition moves an upcoming competition into progress
func StartCompetition(competitionID string) (models.Competition, error) {
	return transitionCompetition(competitionID, models.CompetitionUpcoming, models.CompetitionInProgress)
}

// CloseCompetition finalizes a competition. After this no further
// scores can be recorded and the season rankings cache is stale
func CloseCompetition(competitionID string) (models.Competition, error) {
	competition, err := transitionCompetition(competitionID, models.CompetitionInProgress, models.CompetitionFinalized)
	if err != nil {
		return competition, err
	}

	database.InvalidateRankings(context.Background())
	return competition, nil
}

func transitionCompetition(competitionID, from, to string) (models.Competition, error) {
	var competition models.Competition
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", competitionID).First(&competition).Error; err != nil {
			return fmt.Errorf("competition not found: %w", err)
		}
		if competition.Status != from {
			return fmt.Errorf("competition is %s, expected %s", competition.Status, from)
		}
		competition.Status = to
		return tx.Save(&competition).Error
	})
	return competition, err
}

// Scoreboard is the per-competition standings view fed to the live
// page and the spreadsheet export. Grouped by category, each line one
// entry with its summed rounds
type Scoreboard struct {
	Competition models.Competition `json:"competition"`
	Categories  []ScoreboardGroup  `json:"categories"`
}

type ScoreboardGroup struct {
	CategoryID     string        `json:"category_id"`
	CategoryName   string        `json:"category_name"`
	DisciplineName string        `json:"discipline_name"`
	Lines          []RankedEntry `json:"lines"`
}

// BuildScoreboard assembles the current standings of one competition.
// Disqualified rounds are excluded; registration state is not filtered
// here so pending entries still show on the live board
func BuildScoreboard(competitionID string) (Scoreboard, error) {
	competition, err := GetCompetition(competitionID)
	if err != nil {
		return Scoreboard{}, err
	}

	var results []models.Result
	err = database.DB.
		Joins("JOIN registrations ON registrations.id = results.registration_id").
		Where("registrations.competition_id = ?", competitionID).
		Where("results.disqualified = false").
		Preload("Entry.Discipline").
		Preload("Entry.Category").
		Preload("Registration.Athlete").
		Preload("Registration.Club").
		Find(&results).Error
	if err != nil {
		return Scoreboard{}, fmt.Errorf("failed to load competition results: %w", err)
	}

	grouped := map[string][]RoundScore{}
	var order []string
	names := map[string]ScoreboardGroup{}
	for _, result := range results {
		round, ok := flattenResult(result)
		if !ok {
			continue
		}
		if _, seen := grouped[round.CategoryID]; !seen {
			order = append(order, round.CategoryID)
			names[round.CategoryID] = ScoreboardGroup{
				CategoryID:     round.CategoryID,
				CategoryName:   round.CategoryName,
				DisciplineName: round.DisciplineName,
			}
		}
		grouped[round.CategoryID] = append(grouped[round.CategoryID], round)
	}

	board := Scoreboard{Competition: competition}
	for _, categoryID := range order {
		group := names[categoryID]
		group.Lines = RankGroup(grouped[categoryID])
		board.Categories = append(board.Categories, group)
	}
	return board, nil
}

// AddExpense records an organizational expense against a competition
func AddExpense(competitionID, description string, amount float64, recordedByID *string) (models.Expense, error) {
	if amount <= 0 {
		return models.Expense{}, errors.New("expense amount must be positive")
	}
	if !CompetitionExists(competitionID) {
		return models.Expense{}, errors.New("competition not found")
	}

	expense := models.Expense{
		CompetitionID: competitionID,
		Description:   description,
		Amount:        amount,
		RecordedByID:  recordedByID,
	}
	if err := database.DB.Create(&expense).Error; err != nil {
		return models.Expense{}, fmt.Errorf("failed to record expense: %w", err)
	}
	return expense, nil
}

// CompetitionBalance summarizes collected fees against expenses
type CompetitionBalance struct {
	TotalFees     float64          `json:"total_fees"`
	TotalPaid     float64          `json:"total_paid"`
	TotalExpenses float64          `json:"total_expenses"`
	Balance       float64          `json:"balance"`
	Expenses      []models.Expense `json:"expenses"`
}

// GetCompetitionBalance returns the financial summary of a competition
func GetCompetitionBalance(competitionID string) (CompetitionBalance, error) {
	var balance CompetitionBalance

	row := database.DB.Model(&models.Registration{}).
		Select("COALESCE(SUM(fee), 0), COALESCE(SUM(amount_paid), 0)").
		Where("competition_id = ?", competitionID).
		Row()
	if err := row.Scan(&balance.TotalFees, &balance.TotalPaid); err != nil {
		return balance, fmt.Errorf("failed to sum registration fees: %w", err)
	}

	if err := database.DB.Where("competition_id = ?", competitionID).
		Order("date ASC").Find(&balance.Expenses).Error; err != nil {
		return balance, fmt.Errorf("failed to load expenses: %w", err)
	}
	for _, expense := range balance.Expenses {
		balance.TotalExpenses += expense.Amount
	}
	balance.Balance = balance.TotalPaid - balance.TotalExpenses
	return balance, nil
}
