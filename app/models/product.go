package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType is the fulfilment kind of a product.
type ProductType string

const (
	ProductTypeDeliverable  ProductType = "deliverable"
	ProductTypeDownloadable ProductType = "downloadable"
)

// Valid reports whether t is a recognized product type.
func (t ProductType) Valid() bool {
	return t == ProductTypeDeliverable || t == ProductTypeDownloadable
}

// ProductTypes lists every recognized product type, in display order.
func ProductTypes() []ProductType {
	return []ProductType{ProductTypeDeliverable, ProductTypeDownloadable}
}

// Product is a catalog product record.
//
// name, slug and sku carry unique indexes; the database constraint is the
// sole guard against concurrent duplicate writes (first writer wins).
// slug is derived from name at creation time and never changes afterwards.
type Product struct {
	ID          uint            `gorm:"primaryKey"                      json:"id"`
	BrandID     *uint           `gorm:"index"                           json:"brand_id"`
	Brand       *Brand          `gorm:"foreignKey:BrandID"              json:"brand,omitempty"`
	Name        string          `gorm:"size:255;not null;uniqueIndex"   json:"name"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex"   json:"slug"`
	SKU         string          `gorm:"column:sku;size:100;not null;uniqueIndex" json:"sku"`
	Description string          `gorm:"type:text"                       json:"description"`
	Image       string          `gorm:"size:2048"                       json:"image"`
	Quantity    int             `gorm:"not null;default:0"              json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"     json:"price"`
	IsVisible   bool            `gorm:"not null;default:true"           json:"is_visible"`
	IsFeatured  bool            `gorm:"not null;default:true"           json:"is_featured"`
	Type        ProductType     `gorm:"size:20;not null"                json:"type"`
	PublishedAt *time.Time      `json:"published_at"`

	// Removing a product removes its order lines with it.
	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Published reports whether the product's availability date has arrived.
// A nil or future published_at means the product is not yet live.
func (p *Product) Published(now time.Time) bool {
	return p.PublishedAt != nil && !p.PublishedAt.After(now)
}

// Live reports whether the product should appear on a storefront: visible
// and past its availability date.
func (p *Product) Live(now time.Time) bool {
	return p.IsVisible && p.Published(now)
}
