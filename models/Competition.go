package models

import "time"

// Competition lifecycle states
const (
    CompetitionUpcoming   = "Upcoming"
    CompetitionInProgress = "In Progress"
    CompetitionFinalized  = "Finalized"
)

// Competition types
const (
    CompetitionDepartmental = "Departmental"
    CompetitionNational     = "National"
)

// Competition represents one shooting event with categories, judges and
// registrations. Once finalized no further scores can be recorded
type Competition struct {
    ID              string         `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Name            string         `gorm:"type:varchar(200);not null" json:"name"`
    Description     string         `gorm:"type:text" json:"description"`
    StartDate       time.Time      `gorm:"type:date;not null" json:"start_date"`
    EndDate         time.Time      `gorm:"type:date;not null" json:"end_date"`
    Type            string         `gorm:"type:varchar(50);not null" json:"type"`
    Status          string         `gorm:"type:varchar(50);not null;default:'Upcoming'" json:"status"`
    BaseFee         float64        `gorm:"type:numeric(10,2);not null;default:0" json:"base_fee"`
    CallNumber      string         `gorm:"type:varchar(20)" json:"call_number"`
    CompetitionTime string         `gorm:"type:varchar(10)" json:"competition_time"`
    RangeID         *string        `gorm:"type:uuid;column:range_id" json:"range_id"`
    Range           *ShootingRange `gorm:"foreignKey:RangeID" json:"range"`
    Categories      []*CompetitionCategory `gorm:"foreignKey:CompetitionID" json:"categories"`
    Judges          []*Judge       `gorm:"many2many:competition_judges;" json:"judges"`
    Registrations   []*Registration `gorm:"foreignKey:CompetitionID" json:"-"`
}

// IsFinalized reports whether the competition is closed for scoring
func (c *Competition) IsFinalized() bool {
    return c.Status == CompetitionFinalized
}

// CompetitionCategory attaches a category to a competition with its
// specific entry fee
type CompetitionCategory struct {
    ID            string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    CompetitionID string    `gorm:"type:uuid;not null;uniqueIndex:idx_competition_category;column:competition_id" json:"competition_id"`
    CategoryID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_competition_category;column:category_id" json:"category_id"`
    Fee           float64   `gorm:"type:numeric(10,2);not null;default:0" json:"fee"`
    Category      *Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// ShootingRange represents a licensed shooting range (poligono)
type ShootingRange struct {
    ID                string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Name              string     `gorm:"type:varchar(100);not null" json:"name"`
    Address           string     `gorm:"type:varchar(200)" json:"address"`
    LicenseNumber     string     `gorm:"type:varchar(50)" json:"license_number"`
    LicenseExpiration *time.Time `gorm:"type:date" json:"license_expiration"`
}

// Judge represents a certified judge who records scores
type Judge struct {
    ID            string  `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    FullName      string  `gorm:"type:varchar(100);not null" json:"full_name"`
    LicenseNumber string  `gorm:"type:varchar(50);not null" json:"license_number"`
    UserID        *string `gorm:"type:uuid;column:user_id" json:"user_id"`
    User          *User   `gorm:"foreignKey:UserID" json:"-"`
}

// Expense represents money spent organizing a competition
type Expense struct {
    ID            string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    CompetitionID string    `gorm:"type:uuid;not null;column:competition_id" json:"competition_id"`
    Description   string    `gorm:"type:varchar(200);not null" json:"description"`
    Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
    RecordedByID  *string   `gorm:"type:uuid;column:recorded_by_id" json:"recorded_by_id"`
    Date          time.Time `gorm:"autoCreateTime" json:"date"`
}
