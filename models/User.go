package models

import "time"

// Account roles
const (
    RoleAdmin = "admin"
    RoleJudge = "judge"
    RoleClub  = "club"
)

// User represents a login account: an administrator, a judge, a club
// delegate or an approved athlete
type User struct {
    ID            string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Username      string     `gorm:"type:varchar(100);unique;not null" json:"username"`
    Email         string     `gorm:"type:varchar(100)" json:"email"`
    Password      string     `gorm:"type:varchar(255);not null" json:"-"`
    Role          string     `gorm:"type:varchar(20);not null;default:'club'" json:"role"`
    IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
    LastConnected *time.Time `json:"last_connected"`
}
