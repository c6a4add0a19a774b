package services

import (
	"errors"
	"fmt"
	"time"

	"api/database"
	"api/metrics"
	"api/models"

	"gorm.io/gorm"
)

// UpdateRecord maintains the best-so-far record chain for a (discipline,
// category) pair. A strictly greater score supersedes the current
// record: the old row's IsCurrent flips off and becomes the new row's
// predecessor. Equal or lower scores leave the chain untouched.
// Returns true when the score became the new current record
func UpdateRecord(tx *gorm.DB, disciplineID, categoryID, athleteID, competitionID string,
	score float64, date time.Time) (bool, error) {

	var current models.Record
	err := tx.Where("discipline_id = ? AND category_id = ? AND is_current = true",
		disciplineID, categoryID).First(&current).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to fetch current record: %w", err)
	}

	newRecord := models.Record{
		DisciplineID:  disciplineID,
		CategoryID:    categoryID,
		AthleteID:     athleteID,
		CompetitionID: competitionID,
		Score:         score,
		Date:          date,
		IsCurrent:     true,
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First score ever for this pair becomes the record immediately
		if err := tx.Create(&newRecord).Error; err != nil {
			return false, fmt.Errorf("failed to create record: %w", err)
		}
		return true, nil
	}

	if score <= current.Score {
		return false, nil
	}

	current.IsCurrent = false
	if err := tx.Save(&current).Error; err != nil {
		return false, fmt.Errorf("failed to retire current record: %w", err)
	}

	newRecord.PredecessorID = &current.ID
	if err := tx.Create(&newRecord).Error; err != nil {
		return false, fmt.Errorf("failed to create superseding record: %w", err)
	}

	metrics.RecordsSuperseded.Inc()
	return true, nil
}

// GetCurrentRecord returns the active record for a (discipline, category)
// pair, or gorm.ErrRecordNotFound when none was ever set
func GetCurrentRecord(disciplineID, categoryID string) (models.Record, error) {
	var record models.Record
	err := database.DB.Where("discipline_id = ? AND category_id = ? AND is_current = true",
		disciplineID, categoryID).
		Preload("Athlete").
		Preload("Competition").
		First(&record).Error
	return record, err
}

// RecordHistory returns the full title-holder sequence for a
// (discipline, category) pair, current record first, walking the
// predecessor links
func RecordHistory(disciplineID, categoryID string) ([]models.Record, error) {
	var all []models.Record
	if err := database.DB.Where("discipline_id = ? AND category_id = ?", disciplineID, categoryID).
		Preload("Athlete").
		Preload("Competition").
		Find(&all).Error; err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	return ChainRecords(all), nil
}

// ChainRecords orders a set of record rows for one (discipline,
// category) pair by following predecessor links from the current head.
// Rows unreachable from the head are dropped
func ChainRecords(all []models.Record) []models.Record {
	byID := make(map[string]models.Record, len(all))
	var head *models.Record
	for i := range all {
		byID[all[i].ID] = all[i]
		if all[i].IsCurrent {
			head = &all[i]
		}
	}
	if head == nil {
		return nil
	}

	chain := []models.Record{*head}
	for next := head.PredecessorID; next != nil; {
		node, ok := byID[*next]
		if !ok {
			break
		}
		chain = append(chain, node)
		next = node.PredecessorID
	}
	return chain
}
