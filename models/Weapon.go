package models

import (
    "strings"
    "time"
)

// Weapon represents a firearm or air gun on an athlete's file
type Weapon struct {
    ID             string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    AthleteID      string     `gorm:"type:uuid;not null;column:athlete_id" json:"athlete_id"`
    Type           string     `gorm:"type:varchar(100);not null" json:"type"`
    Caliber        string     `gorm:"type:varchar(50);not null" json:"caliber"`
    Brand          string     `gorm:"type:varchar(100)" json:"brand"`
    Model          string     `gorm:"type:varchar(100)" json:"model"`
    SerialNumber   string     `gorm:"type:varchar(100)" json:"serial_number"`
    InspectionDate *time.Time `gorm:"type:date" json:"inspection_date"`
    FilePath       string     `gorm:"type:varchar(255)" json:"file_path"`
    Athlete        *Athlete   `gorm:"foreignKey:AthleteID" json:"-"`
}

// IsCompressedAir reports whether the weapon is an air gun, which is
// exempt from license and inspection requirements
func (w *Weapon) IsCompressedAir() bool {
    t := strings.ToUpper(w.Type)
    return strings.Contains(t, "AIRE") || strings.Contains(t, "AIR ")
}

// Summary returns the short description used on live scoreboards
func (w *Weapon) Summary() string {
    return strings.TrimSpace(w.Brand + " " + w.Caliber)
}

// WeaponLoan authorizes an athlete to compete with somebody else's weapon
// for the duration of one competition
type WeaponLoan struct {
    ID            string   `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    WeaponID      string   `gorm:"type:uuid;not null;column:weapon_id" json:"weapon_id"`
    AthleteID     string   `gorm:"type:uuid;not null;column:athlete_id" json:"athlete_id"`
    CompetitionID string   `gorm:"type:uuid;not null;column:competition_id" json:"competition_id"`
    IsActive      bool     `gorm:"not null;default:true" json:"is_active"`
    Weapon        *Weapon  `gorm:"foreignKey:WeaponID" json:"weapon"`
    Athlete       *Athlete `gorm:"foreignKey:AthleteID" json:"-"`
}
