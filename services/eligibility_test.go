package services_test

import (
	"testing"
	"time"

	"api/models"
	"api/services"

	. "github.com/smartystreets/goconvey/convey"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestValidateEntry(t *testing.T) {
	Convey("Given an adult athlete with a 9mm pistol", t, func() {
		athlete := models.Athlete{
			ID:        "athlete-1",
			BirthDate: date(2000, 6, 15), // 25 at the 2025 competition
		}
		weapon := &models.Weapon{
			ID:           "weapon-1",
			AthleteID:    "athlete-1",
			Type:         "Pistola Semiautomatica",
			Caliber:      "9mm",
			SerialNumber: "SN-100",
		}
		category := models.Category{Name: "Open"}
		competition := models.Competition{ID: "comp-1", StartDate: date(2025, 8, 10)}

		validLicense := models.Document{
			DocumentType:   models.DocCompetitionLicense,
			ExpirationDate: timePtr(date(2026, 12, 31)),
		}

		Convey("When the athlete has no valid license for a non-air weapon", func() {
			err := services.ValidateEntry(athlete, category, weapon, competition, nil, false)

			Convey("Then the entry is rejected with a license violation", func() {
				So(err, ShouldNotBeNil)
				So(services.IsEligibilityError(err), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "license")
			})
		})

		Convey("When the same weapon is compressed air", func() {
			weapon.Type = "Pistola Aire Comprimido"
			err := services.ValidateEntry(athlete, category, weapon, competition, nil, false)

			Convey("Then the license rule does not apply", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When the athlete holds a valid license", func() {
			docs := []models.Document{validLicense}
			err := services.ValidateEntry(athlete, category, weapon, competition, docs, false)

			Convey("Then the entry passes", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When the license is expired at competition start", func() {
			docs := []models.Document{{
				DocumentType:   models.DocCompetitionLicense,
				ExpirationDate: timePtr(date(2025, 1, 1)),
			}}
			err := services.ValidateEntry(athlete, category, weapon, competition, docs, false)

			Convey("Then the entry is rejected", func() {
				So(services.IsEligibilityError(err), ShouldBeTrue)
			})
		})

		Convey("When the category requires a different caliber", func() {
			category.RequiredCaliber = ".22 LR"
			err := services.ValidateEntry(athlete, category, weapon, competition, []models.Document{validLicense}, false)

			Convey("Then the entry is rejected with a caliber violation", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "caliber")
			})
		})

		Convey("When the caliber differs only in case and spacing", func() {
			category.RequiredCaliber = "9 MM"
			err := services.ValidateEntry(athlete, category, weapon, competition, []models.Document{validLicense}, false)

			Convey("Then it still matches", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When the weapon belongs to somebody else", func() {
			weapon.AthleteID = "athlete-2"
			docs := []models.Document{validLicense}

			Convey("Then it is rejected without a loan", func() {
				err := services.ValidateEntry(athlete, category, weapon, competition, docs, false)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "loan")
			})

			Convey("And accepted with an active loan", func() {
				err := services.ValidateEntry(athlete, category, weapon, competition, docs, true)
				So(err, ShouldBeNil)
			})
		})
	})

	Convey("Given a minor athlete", t, func() {
		athlete := models.Athlete{
			ID:        "athlete-3",
			BirthDate: date(2008, 3, 1), // 17 at the 2025 competition
		}
		weapon := &models.Weapon{
			ID:        "weapon-2",
			AthleteID: "athlete-3",
			Type:      "Carabina",
			Caliber:   ".22 LR",
		}
		competition := models.Competition{StartDate: date(2025, 8, 10)}

		Convey("When no guardian responsibility document is on file", func() {
			err := services.ValidateEntry(athlete, models.Category{}, weapon, competition, nil, false)

			Convey("Then the entry is rejected", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "guardian")
			})
		})

		Convey("When the guardian document is on file", func() {
			docs := []models.Document{{DocumentType: models.DocGuardianResponsibility}}
			err := services.ValidateEntry(athlete, models.Category{}, weapon, competition, docs, false)

			Convey("Then the entry passes", func() {
				So(err, ShouldBeNil)
			})
		})
	})

	Convey("Given a competition starting in 2026", t, func() {
		athlete := models.Athlete{ID: "athlete-1", BirthDate: date(1990, 1, 1)}
		competition := models.Competition{StartDate: date(2026, 3, 15)}
		license := []models.Document{{DocumentType: models.DocCompetitionLicense}}

		Convey("When the entry has no weapon", func() {
			err := services.ValidateEntry(athlete, models.Category{}, nil, competition, license, false)

			Convey("Then the weapon mandate rejects it", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "mandatory")
			})
		})

		Convey("When a non-air weapon has no inspection date", func() {
			weapon := &models.Weapon{AthleteID: "athlete-1", Type: "Escopeta", Caliber: "12"}
			err := services.ValidateEntry(athlete, models.Category{}, weapon, competition, license, false)

			Convey("Then the entry is rejected", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "inspection")
			})
		})

		Convey("When the inspection date is before the competition start", func() {
			weapon := &models.Weapon{
				AthleteID:      "athlete-1",
				Type:           "Escopeta",
				Caliber:        "12",
				InspectionDate: timePtr(date(2026, 1, 10)),
			}
			err := services.ValidateEntry(athlete, models.Category{}, weapon, competition, license, false)

			Convey("Then the entry is rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the inspection date covers the competition", func() {
			weapon := &models.Weapon{
				AthleteID:      "athlete-1",
				Type:           "Escopeta",
				Caliber:        "12",
				InspectionDate: timePtr(date(2026, 3, 15)),
			}
			err := services.ValidateEntry(athlete, models.Category{}, weapon, competition, license, false)

			Convey("Then the entry passes", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When a weapon-less entry targets a pre-2026 competition", func() {
			competition.StartDate = date(2025, 11, 1)
			err := services.ValidateEntry(athlete, models.Category{}, nil, competition, nil, false)

			Convey("Then it is still allowed", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
