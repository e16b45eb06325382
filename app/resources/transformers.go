// Package resources defines the API transformers for detail responses:
// they fix the JSON shape independently of the GORM structs, render prices
// as fixed two-decimal strings, and inline the related brand.
package resources

import (
	"time"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/pkg/resource"
)

// ProductResource transforms one product for the detail endpoint.
type ProductResource struct{ resource.Base }

func (ProductResource) ToArray(v interface{}) resource.Map {
	p, ok := v.(models.Product)
	if !ok {
		return resource.Map{}
	}

	out := resource.Map{
		"id":           p.ID,
		"name":         p.Name,
		"slug":         p.Slug,
		"sku":          p.SKU,
		"description":  p.Description,
		"image":        p.Image,
		"quantity":     p.Quantity,
		"price":        p.Price.StringFixed(2),
		"is_visible":   p.IsVisible,
		"is_featured":  p.IsFeatured,
		"type":         p.Type,
		"published_at": p.PublishedAt,
		"live":         p.Live(time.Now()),
		"created_at":   p.CreatedAt,
		"updated_at":   p.UpdatedAt,
	}
	if p.Brand != nil {
		out["brand"] = resource.Map{
			"id":   p.Brand.ID,
			"name": p.Brand.Name,
			"slug": p.Brand.Slug,
		}
	}
	return out
}

// BrandResource transforms one brand for the detail endpoint.
type BrandResource struct{ resource.Base }

func (BrandResource) ToArray(v interface{}) resource.Map {
	b, ok := v.(models.Brand)
	if !ok {
		return resource.Map{}
	}

	return resource.Map{
		"id":          b.ID,
		"name":        b.Name,
		"slug":        b.Slug,
		"url":         b.URL,
		"primary_hex": b.PrimaryHex,
		"is_visible":  b.IsVisible,
		"description": b.Description,
		"created_at":  b.CreatedAt,
		"updated_at":  b.UpdatedAt,
	}
}
