package models

// Discipline represents a shooting discipline (clay, FBI course, match
// pistol, metallic silhouette, IPSC, running target, precision...)
type Discipline struct {
    ID         string      `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Name       string      `gorm:"type:varchar(100);unique;not null" json:"name"`
    Categories []*Category `gorm:"foreignKey:DisciplineID" json:"categories"`
}

// Category represents a competition category within a discipline. When
// RequiredCaliber is set, only weapons of that caliber may be entered
type Category struct {
    ID              string      `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Name            string      `gorm:"type:varchar(100);not null" json:"name"`
    DisciplineID    string      `gorm:"type:uuid;not null;column:discipline_id" json:"discipline_id"`
    RequiredCaliber string      `gorm:"type:varchar(50)" json:"required_caliber"`
    Discipline      *Discipline `gorm:"foreignKey:DisciplineID" json:"discipline"`
}
