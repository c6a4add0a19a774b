package services

import (
	"errors"
	"fmt"
	"time"

	"api/database"
	"api/models"

	"gorm.io/gorm"
)

var (
	ErrAlreadyRegistered  = errors.New("athlete is already registered in this competition")
	ErrAthleteNotActive   = errors.New("athlete is not active")
	ErrCategoryNotOffered = errors.New("category is not offered by this competition")
)

// EntryRequest is one requested category entry inside a registration
type EntryRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	WeaponID   *string `json:"weapon_id"`
}

// CreateRegistration enrolls an athlete into a competition with one or
// more category entries. All or nothing: if any entry fails eligibility
// the whole registration is rolled back
func CreateRegistration(athleteID, competitionID string, clubID *string,
	entries []EntryRequest, isGuest bool) (models.Registration, error) {

	if len(entries) == 0 {
		return models.Registration{}, errors.New("registration needs at least one entry")
	}

	var registration models.Registration
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var athlete models.Athlete
		if err := tx.Where("id = ?", athleteID).First(&athlete).Error; err != nil {
			return fmt.Errorf("athlete not found: %w", err)
		}
		if athlete.Status != models.AthleteActive {
			return ErrAthleteNotActive
		}

		var competition models.Competition
		if err := tx.Preload("Categories").
			Where("id = ?", competitionID).First(&competition).Error; err != nil {
			return fmt.Errorf("competition not found: %w", err)
		}
		if competition.IsFinalized() {
			return ErrCompetitionClosed
		}

		var existing int64
		if err := tx.Model(&models.Registration{}).
			Where("athlete_id = ? AND competition_id = ?", athleteID, competitionID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyRegistered
		}

		offeredFees := map[string]float64{}
		for _, cc := range competition.Categories {
			offeredFees[cc.CategoryID] = cc.Fee
		}

		registration = models.Registration{
			AthleteID:     athleteID,
			CompetitionID: competitionID,
			ClubID:        clubID,
			State:         models.RegistrationPending,
			Fee:           competition.BaseFee,
			IsGuest:       isGuest,
		}
		if err := tx.Create(&registration).Error; err != nil {
			return fmt.Errorf("failed to create registration: %w", err)
		}

		for _, request := range entries {
			fee, offered := offeredFees[request.CategoryID]
			if !offered {
				return ErrCategoryNotOffered
			}

			if err := ValidateEntryCandidate(tx, athlete, request.CategoryID,
				request.WeaponID, competition); err != nil {
				return err
			}

			var category models.Category
			if err := tx.Where("id = ?", request.CategoryID).First(&category).Error; err != nil {
				return fmt.Errorf("category not found: %w", err)
			}

			entry := models.Entry{
				RegistrationID: registration.ID,
				CategoryID:     request.CategoryID,
				DisciplineID:   category.DisciplineID,
				WeaponID:       request.WeaponID,
				FeeCharged:     fee,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create entry: %w", err)
			}
			registration.Fee += fee
			registration.Entries = append(registration.Entries, &entry)
		}

		return tx.Model(&models.Registration{}).
			Where("id = ?", registration.ID).
			Update("fee", registration.Fee).Error
	})
	if err != nil {
		return models.Registration{}, err
	}
	return registration, nil
}

// ApproveRegistration moves a pending registration to approved and
// stamps who did it
func ApproveRegistration(registrationID, approverID string) (models.Registration, error) {
	var registration models.Registration
	if err := database.DB.Where("id = ?", registrationID).First(&registration).Error; err != nil {
		return models.Registration{}, fmt.Errorf("registration not found: %w", err)
	}

	now := time.Now()
	registration.State = models.RegistrationApproved
	registration.ApprovedByID = &approverID
	registration.ApprovedAt = &now
	if err := database.DB.Save(&registration).Error; err != nil {
		return models.Registration{}, err
	}
	return registration, nil
}

// RejectRegistration marks a registration as rejected
func RejectRegistration(registrationID string) (models.Registration, error) {
	var registration models.Registration
	if err := database.DB.Where("id = ?", registrationID).First(&registration).Error; err != nil {
		return models.Registration{}, fmt.Errorf("registration not found: %w", err)
	}

	registration.State = models.RegistrationRejected
	if err := database.DB.Save(&registration).Error; err != nil {
		return models.Registration{}, err
	}
	return registration, nil
}

// ReassignEntryWeapon swaps the weapon of an entry. Allowed only while
// no round has been scored against the entry
func ReassignEntryWeapon(entryID string, weaponID *string) (models.Entry, error) {
	var entry models.Entry
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Registration.Athlete").Preload("Registration.Competition").
			Where("id = ?", entryID).First(&entry).Error; err != nil {
			return fmt.Errorf("entry not found: %w", err)
		}

		var scored int64
		if err := tx.Model(&models.Result{}).
			Where("entry_id = ?", entryID).Count(&scored).Error; err != nil {
			return err
		}
		if scored > 0 {
			return errors.New("entry already has recorded scores, weapon is locked")
		}

		registration := entry.Registration
		if registration == nil || registration.Athlete == nil || registration.Competition == nil {
			return errors.New("entry is missing its registration context")
		}
		if err := ValidateEntryCandidate(tx, *registration.Athlete, entry.CategoryID,
			weaponID, *registration.Competition); err != nil {
			return err
		}

		entry.WeaponID = weaponID
		return tx.Save(&entry).Error
	})
	if err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

// GetCompetitionRegistrations lists registrations of one competition
func GetCompetitionRegistrations(competitionID string) ([]models.Registration, error) {
	var registrations []models.Registration
	err := database.DB.Where("competition_id = ?", competitionID).
		Preload("Athlete").
		Preload("Club").
		Preload("Entries.Category").
		Preload("Entries.Discipline").
		Preload("Entries.Weapon").
		Find(&registrations).Error
	return registrations, err
}

// RecordPayment adds a payment amount against a registration's fee
func RecordPayment(registrationID string, amount float64, notes string) (models.Registration, error) {
	var registration models.Registration
	if err := database.DB.Where("id = ?", registrationID).First(&registration).Error; err != nil {
		return models.Registration{}, fmt.Errorf("registration not found: %w", err)
	}

	registration.AmountPaid += amount
	if notes != "" {
		registration.PaymentNotes = notes
	}
	if err := database.DB.Save(&registration).Error; err != nil {
		return models.Registration{}, err
	}
	return registration, nil
}
