package models

import "time"

// Record represents the best score ever shot for a (discipline, category)
// pair. At most one record per pair has IsCurrent set; superseding a
// record flips the old one's flag and links it as predecessor, forming a
// history chain with the current holder at the head
type Record struct {
    ID            string      `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    DisciplineID  string      `gorm:"type:uuid;not null;column:discipline_id" json:"discipline_id"`
    CategoryID    string      `gorm:"type:uuid;not null;column:category_id" json:"category_id"`
    AthleteID     string      `gorm:"type:uuid;not null;column:athlete_id" json:"athlete_id"`
    CompetitionID string      `gorm:"type:uuid;not null;column:competition_id" json:"competition_id"`
    Score         float64     `gorm:"type:numeric(15,5);not null" json:"score"`
    Date          time.Time   `gorm:"type:date;not null" json:"date"`
    IsCurrent     bool        `gorm:"not null;default:true" json:"is_current"`
    PredecessorID *string     `gorm:"type:uuid;column:predecessor_id" json:"predecessor_id"`
    Discipline    *Discipline `gorm:"foreignKey:DisciplineID" json:"discipline"`
    Category      *Category   `gorm:"foreignKey:CategoryID" json:"category"`
    Athlete       *Athlete    `gorm:"foreignKey:AthleteID" json:"athlete"`
    Competition   *Competition `gorm:"foreignKey:CompetitionID" json:"competition"`
}
