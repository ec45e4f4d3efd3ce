package models

import "time"

// Employee is a staff profile. Role here is a free-text job title and has
// nothing to do with the authorization role on User.
type Employee struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Role       string    `gorm:"type:varchar(255);not null" json:"role"`
	Department string    `gorm:"type:varchar(255);not null" json:"department"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
