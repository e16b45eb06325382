package models

import "time"

// User is a back-office operator account.
type User struct {
	ID       uint   `gorm:"primaryKey"                    json:"id"`
	Name     string `gorm:"size:255;not null"             json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null"             json:"-"` // hashed, never serialised
	Role     string `gorm:"size:50;default:operator"      json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
