package models

import "time"

// Athlete lifecycle states
const (
    AthletePending   = "Pending"
    AthleteActive    = "Active"
    AthleteSuspended = "Suspended"
    AthleteRejected  = "Rejected"
)

// Athlete represents a registered sport shooter
type Athlete struct {
    ID               string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    FirstName        string    `gorm:"type:varchar(100);not null" json:"first_name"`
    PaternalSurname  string    `gorm:"type:varchar(100);not null" json:"paternal_surname"`
    MaternalSurname  string    `gorm:"type:varchar(100)" json:"maternal_surname"`
    CI               string    `gorm:"type:varchar(20);unique;not null" json:"ci"`
    BirthDate        time.Time `gorm:"type:date;not null" json:"birth_date"`
    Gender           string    `gorm:"type:varchar(10)" json:"gender"`
    Department       string    `gorm:"type:varchar(50)" json:"department"`
    Phone            string    `gorm:"type:varchar(20)" json:"phone"`
    Email            string    `gorm:"type:varchar(100)" json:"email"`
    Status           string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
    AdminNotes       string    `gorm:"type:text" json:"admin_notes"`
    ClubID           *string   `gorm:"type:uuid;column:club_id" json:"club_id"`
    Club             *Club     `gorm:"foreignKey:ClubID" json:"club"`
    UserID           *string   `gorm:"type:uuid;column:user_id" json:"user_id"`
    User             *User     `gorm:"foreignKey:UserID" json:"-"`
    Documents        []*Document `gorm:"foreignKey:AthleteID" json:"documents"`
    Weapons          []*Weapon   `gorm:"foreignKey:AthleteID" json:"weapons"`
}

// DisplayName returns the athlete's full name the way it is printed on
// scoreboards and certificates
func (a *Athlete) DisplayName() string {
    name := a.FirstName + " " + a.PaternalSurname
    if a.MaternalSurname != "" {
        name += " " + a.MaternalSurname
    }
    return name
}

// AgeAt returns the athlete's age in full years at the given date
func (a *Athlete) AgeAt(date time.Time) int {
    age := date.Year() - a.BirthDate.Year()
    if date.YearDay() < a.BirthDate.YearDay() {
        age--
    }
    return age
}
