package models

import "time"

// Registration states
const (
    RegistrationPending  = "Pending"
    RegistrationApproved = "Approved"
    RegistrationRejected = "Rejected"
)

// Registration represents one athlete's enrollment into one competition.
// It aggregates the athlete's entries and the total fee charged
type Registration struct {
    ID            string       `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    AthleteID     string       `gorm:"type:uuid;not null;uniqueIndex:idx_athlete_competition;column:athlete_id" json:"athlete_id"`
    CompetitionID string       `gorm:"type:uuid;not null;uniqueIndex:idx_athlete_competition;column:competition_id" json:"competition_id"`
    ClubID        *string      `gorm:"type:uuid;column:club_id" json:"club_id"`
    State         string       `gorm:"type:varchar(10);not null;default:'Pending'" json:"state"`
    Fee           float64      `gorm:"type:numeric(10,2);not null;default:0" json:"fee"`
    AmountPaid    float64      `gorm:"type:numeric(10,2);not null;default:0" json:"amount_paid"`
    PaymentNotes  string       `gorm:"type:text" json:"payment_notes"`
    Squad         int          `gorm:"type:integer;not null;default:1" json:"squad"`
    Lane          int          `gorm:"type:integer;not null;default:0" json:"lane"`
    IsGuest       bool         `gorm:"not null;default:false" json:"is_guest"`
    ApprovedByID  *string      `gorm:"type:uuid;column:approved_by_id" json:"approved_by_id"`
    ApprovedAt    *time.Time   `json:"approved_at"`
    Athlete       *Athlete     `gorm:"foreignKey:AthleteID" json:"athlete"`
    Competition   *Competition `gorm:"foreignKey:CompetitionID" json:"-"`
    Club          *Club        `gorm:"foreignKey:ClubID" json:"club"`
    Entries       []*Entry     `gorm:"foreignKey:RegistrationID" json:"entries"`
}

// Entry links a registration to one category and discipline, optionally
// with the weapon used. Unique per (registration, category); the weapon
// may be reassigned until the first score is recorded
type Entry struct {
    ID             string      `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    RegistrationID string      `gorm:"type:uuid;not null;uniqueIndex:idx_registration_category;column:registration_id" json:"registration_id"`
    CategoryID     string      `gorm:"type:uuid;not null;uniqueIndex:idx_registration_category;column:category_id" json:"category_id"`
    DisciplineID   string      `gorm:"type:uuid;not null;column:discipline_id" json:"discipline_id"`
    WeaponID       *string     `gorm:"type:uuid;column:weapon_id" json:"weapon_id"`
    FeeCharged     float64     `gorm:"type:numeric(10,2);not null;default:0" json:"fee_charged"`
    Registration   *Registration `gorm:"foreignKey:RegistrationID" json:"-"`
    Category       *Category   `gorm:"foreignKey:CategoryID" json:"category"`
    Discipline     *Discipline `gorm:"foreignKey:DisciplineID" json:"discipline"`
    Weapon         *Weapon     `gorm:"foreignKey:WeaponID" json:"weapon"`
}
