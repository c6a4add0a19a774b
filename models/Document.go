package models

import "time"

// Document types accepted on an athlete's file
const (
    DocCompetitionLicense    = "Competition License"
    DocGuardianResponsibility = "Guardian Responsibility"
    DocIdentityCard          = "Identity Card"
)

// Document represents a compliance document on an athlete's file
type Document struct {
    ID             string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    AthleteID      string     `gorm:"type:uuid;not null;column:athlete_id" json:"athlete_id"`
    DocumentType   string     `gorm:"type:varchar(50);not null" json:"document_type"`
    FilePath       string     `gorm:"type:varchar(255)" json:"file_path"`
    ExpirationDate *time.Time `gorm:"type:date" json:"expiration_date"`
    Athlete        *Athlete   `gorm:"foreignKey:AthleteID" json:"-"`
}

// ValidAt reports whether the document is usable at the given date.
// Documents without an expiration date never expire
func (d *Document) ValidAt(date time.Time) bool {
    return d.ExpirationDate == nil || !d.ExpirationDate.Before(date)
}
