package services

import (
	"fmt"
	"strings"

	"api/models"

	"gorm.io/gorm"
)

// Competitions starting in this year or later require a weapon on every
// entry and a valid inspection on every non-air weapon
const weaponMandateYear = 2026

// EligibilityError is a rule violation that rejects an entry before it
// is created. The reason is meant to be shown to the registering club
type EligibilityError struct {
	Reason string
}

func (e *EligibilityError) Error() string {
	return e.Reason
}

func violation(format string, args ...interface{}) error {
	return &EligibilityError{Reason: fmt.Sprintf(format, args...)}
}

// IsEligibilityError reports whether an error is an entry rule violation
func IsEligibilityError(err error) bool {
	_, ok := err.(*EligibilityError)
	return ok
}

// ValidateEntry checks a candidate entry against the federation's weapon
// and license rules. All collaborating rows (documents, loan lookup) are
// passed in so the check itself stays pure
func ValidateEntry(athlete models.Athlete, category models.Category, weapon *models.Weapon,
	competition models.Competition, documents []models.Document, hasActiveLoan bool) error {

	mandateActive := competition.StartDate.Year() >= weaponMandateYear

	if weapon == nil {
		if mandateActive {
			return violation("a weapon is mandatory for every entry from %d onward", weaponMandateYear)
		}
		// Weapon-less entries carry no weapon rules
		return nil
	}

	// Caliber restriction declared by the category
	if category.RequiredCaliber != "" && !caliberMatches(category.RequiredCaliber, weapon.Caliber) {
		return violation("category %q requires caliber %s, weapon is %s",
			category.Name, category.RequiredCaliber, weapon.Caliber)
	}

	// License and inspection rules do not apply to air guns
	if !weapon.IsCompressedAir() {
		age := athlete.AgeAt(competition.StartDate)
		if age < 21 {
			if !hasDocumentOnFile(documents, models.DocGuardianResponsibility) {
				return violation("athletes under 21 need a guardian responsibility document on file")
			}
		} else if !hasValidDocument(documents, models.DocCompetitionLicense, competition) {
			return violation("athlete has no valid competition license and may only use compressed-air weapons")
		}

		if mandateActive {
			if weapon.InspectionDate == nil || weapon.InspectionDate.Before(competition.StartDate) {
				return violation("weapon %s has no valid inspection for a competition starting %s",
					weapon.SerialNumber, competition.StartDate.Format("2006-01-02"))
			}
		}
	}

	// The weapon must belong to the athlete or be loaned for this competition
	if weapon.AthleteID != athlete.ID && !hasActiveLoan {
		return violation("weapon %s does not belong to the athlete and no active loan exists", weapon.SerialNumber)
	}

	return nil
}

func caliberMatches(required, actual string) bool {
	normalize := func(s string) string {
		return strings.ToUpper(strings.Join(strings.Fields(s), ""))
	}
	return normalize(required) == normalize(actual)
}

func hasDocumentOnFile(documents []models.Document, docType string) bool {
	for _, doc := range documents {
		if doc.DocumentType == docType {
			return true
		}
	}
	return false
}

func hasValidDocument(documents []models.Document, docType string, competition models.Competition) bool {
	for _, doc := range documents {
		if doc.DocumentType == docType && doc.ValidAt(competition.StartDate) {
			return true
		}
	}
	return false
}

// ValidateEntryCandidate loads the rows an eligibility check needs and
// runs ValidateEntry. Runs inside the registration transaction
func ValidateEntryCandidate(tx *gorm.DB, athlete models.Athlete, categoryID string,
	weaponID *string, competition models.Competition) error {

	var category models.Category
	if err := tx.Where("id = ?", categoryID).First(&category).Error; err != nil {
		return violation("category not found")
	}

	var weapon *models.Weapon
	if weaponID != nil {
		var w models.Weapon
		if err := tx.Where("id = ?", *weaponID).First(&w).Error; err != nil {
			return violation("weapon not found")
		}
		weapon = &w
	}

	var documents []models.Document
	if err := tx.Where("athlete_id = ?", athlete.ID).Find(&documents).Error; err != nil {
		return fmt.Errorf("failed to load athlete documents: %w", err)
	}

	hasLoan := false
	if weapon != nil && weapon.AthleteID != athlete.ID {
		var loanCount int64
		if err := tx.Model(&models.WeaponLoan{}).
			Where("weapon_id = ? AND athlete_id = ? AND competition_id = ? AND is_active = true",
				weapon.ID, athlete.ID, competition.ID).
			Count(&loanCount).Error; err != nil {
			return fmt.Errorf("failed to check weapon loans: %w", err)
		}
		hasLoan = loanCount > 0
	}

	return ValidateEntry(athlete, category, weapon, competition, documents, hasLoan)
}
