package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/realtime"
	"api/utils/scoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCompetitionClosed = errors.New("competition is finalized and closed for scoring")
	ErrNoEntries         = errors.New("registration has no entry to score")
)

// EventPublisher is the live-update collaborator the result recorder
// publishes to after a successful commit. Satisfied by *realtime.Hub
type EventPublisher interface {
	PublishScoreUpdate(update realtime.ScoreUpdate)
}

// ResultsService records scored rounds: one transaction covering the
// result row and the record-chain update, then a best-effort broadcast
type ResultsService struct {
	publisher EventPublisher
}

func NewResultsService(publisher EventPublisher) *ResultsService {
	return &ResultsService{publisher: publisher}
}

// RecordResult scores a raw payload for a registration's entry and
// persists it. entryID may be empty, in which case the registration's
// first entry is scored (single-entry registrations are the common case)
func (s *ResultsService) RecordResult(registrationID, entryID, roundLabel string,
	raw map[string]interface{}, judge *models.Judge) (models.Result, error) {

	start := time.Now()

	var registration models.Registration
	if err := database.DB.
		Preload("Athlete").
		Preload("Competition").
		Preload("Entries.Discipline").
		Preload("Entries.Weapon").
		Where("id = ?", registrationID).
		First(&registration).Error; err != nil {
		return models.Result{}, fmt.Errorf("registration not found: %w", err)
	}

	if registration.Competition.IsFinalized() {
		return models.Result{}, ErrCompetitionClosed
	}

	entry, err := resolveEntry(registration, entryID)
	if err != nil {
		return models.Result{}, err
	}
	if entry.Discipline == nil {
		return models.Result{}, fmt.Errorf("entry %s has no discipline", entry.ID)
	}

	family := scoring.Classify(entry.Discipline.Name)
	score := scoring.Compute(entry.Discipline.Name, raw)

	// The submitted payload is retained verbatim for audit; the
	// tie-break metadata is stored next to it under its own keys
	details := models.JSONMap{}
	for k, v := range raw {
		details[k] = v
	}
	if family == scoring.FamilyFBI {
		details["final_hits_5"] = score.TieBreak.FinalHitsFive
		details["sort_key"] = score.TieBreak.SortKey
	}

	result := models.Result{
		RegistrationID:   registration.ID,
		EntryID:          entry.ID,
		RoundLabel:       roundLabel,
		RawDetails:       details,
		Score:            score.Points,
		VerificationCode: uuid.NewString(),
	}
	if judge != nil {
		result.JudgeID = &judge.ID
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return fmt.Errorf("failed to persist result: %w", err)
		}

		// Update the record chain for every category of this
		// discipline offered by the competition
		categoryIDs, err := competitionCategoryIDs(tx, registration.CompetitionID, entry.DisciplineID)
		if err != nil {
			return err
		}
		for _, categoryID := range categoryIDs {
			if _, err := UpdateRecord(tx, entry.DisciplineID, categoryID,
				registration.AthleteID, registration.CompetitionID,
				score.Points, registration.Competition.StartDate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Result{}, err
	}

	metrics.ScoresSubmitted.WithLabelValues(family.String()).Inc()
	metrics.RecordDBOperation("record_result", "results", start)

	s.broadcast(registration, entry, result)
	return result, nil
}

// broadcast publishes the live update after commit. Fire and forget:
// nothing here can fail the submission
func (s *ResultsService) broadcast(registration models.Registration, entry *models.Entry, result models.Result) {
	if s.publisher == nil {
		return
	}

	athleteName := ""
	if registration.Athlete != nil {
		athleteName = registration.Athlete.DisplayName()
	}
	weaponInfo := "N/A"
	if entry.Weapon != nil {
		weaponInfo = entry.Weapon.Summary()
	}

	s.publisher.PublishScoreUpdate(realtime.ScoreUpdate{
		EntryID:        entry.ID,
		RegistrationID: registration.ID,
		CompetitionID:  registration.CompetitionID,
		Score:          strconv.FormatFloat(result.Score, 'f', -1, 64),
		Athlete:        athleteName,
		Weapon:         weaponInfo,
		RoundLabel:     result.RoundLabel,
	})
}

func resolveEntry(registration models.Registration, entryID string) (*models.Entry, error) {
	if len(registration.Entries) == 0 {
		return nil, ErrNoEntries
	}
	if entryID == "" {
		return registration.Entries[0], nil
	}
	for _, entry := range registration.Entries {
		if entry.ID == entryID {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("entry %s does not belong to registration %s", entryID, registration.ID)
}

func competitionCategoryIDs(tx *gorm.DB, competitionID, disciplineID string) ([]string, error) {
	var categoryIDs []string
	err := tx.Model(&models.CompetitionCategory{}).
		Joins("JOIN categories ON categories.id = competition_categories.category_id").
		Where("competition_categories.competition_id = ? AND categories.discipline_id = ?",
			competitionID, disciplineID).
		Pluck("competition_categories.category_id", &categoryIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve competition categories: %w", err)
	}
	return categoryIDs, nil
}

// DisqualifyResult flags a scored round as disqualified. The row stays:
// disqualification is terminal, not a deletion
func DisqualifyResult(resultID, reason string) (models.Result, error) {
	var result models.Result
	if err := database.DB.Where("id = ?", resultID).First(&result).Error; err != nil {
		return models.Result{}, fmt.Errorf("result not found: %w", err)
	}

	result.Disqualified = true
	result.DisqualifyReason = reason
	if err := database.DB.Save(&result).Error; err != nil {
		return models.Result{}, fmt.Errorf("failed to disqualify result: %w", err)
	}
	return result, nil
}

// GetResultByVerificationCode resolves a certificate verification code
// to the exact round that produced it
func GetResultByVerificationCode(code string) (models.Result, error) {
	var result models.Result
	err := database.DB.Where("verification_code = ?", code).
		Preload("Registration.Athlete").
		Preload("Judge").
		First(&result).Error
	return result, err
}

// GetRegistrationResults lists every scored round of one registration
func GetRegistrationResults(registrationID string) ([]models.Result, error) {
	var results []models.Result
	err := database.DB.Where("registration_id = ?", registrationID).
		Order("recorded_at ASC").
		Find(&results).Error
	if err != nil {
		log.Printf("failed to list results for registration %s: %v", registrationID, err)
		return nil, err
	}
	return results, nil
}
