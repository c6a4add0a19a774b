package models

// Club represents an affiliated shooting club that registers athletes
type Club struct {
    ID         string `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Name       string `gorm:"type:varchar(100);unique;not null" json:"name"`
    Department string `gorm:"type:varchar(50)" json:"department"`
    Contact    string `gorm:"type:varchar(100)" json:"contact"`
    UserID     *string `gorm:"type:uuid;column:user_id" json:"user_id"`
    User       *User   `gorm:"foreignKey:UserID" json:"-"`
}
