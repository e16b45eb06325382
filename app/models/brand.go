package models

import "time"

// Brand groups products under a manufacturer or label.
//
// Deleting a brand nulls out brand_id on its products; the products
// themselves survive.
type Brand struct {
	ID          uint   `gorm:"primaryKey"                    json:"id"`
	Name        string `gorm:"size:255;not null"             json:"name"`
	Slug        string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	URL         string `gorm:"size:2048"                     json:"url"`
	PrimaryHex  string `gorm:"size:7"                        json:"primary_hex"`
	IsVisible   bool   `gorm:"not null;default:false"        json:"is_visible"`
	Description string `gorm:"type:text"                     json:"description"`

	Products []Product `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
