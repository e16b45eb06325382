// Package factories generates constraint-respecting randomized catalog
// records for seeding and tests. A Factory takes its randomness source and
// clock explicitly, so the same seed always produces the same rows.
package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/kirana/app/models"
)

var adjectives = []string{
	"Wireless", "Ergonomic", "Compact", "Portable", "Rugged", "Sleek",
	"Premium", "Classic", "Modern", "Foldable", "Smart", "Ultra",
}

var nouns = []string{
	"Mouse", "Keyboard", "Headset", "Monitor", "Webcam", "Speaker",
	"Charger", "Backpack", "Stand", "Hub", "Lamp", "Microphone",
}

// Factory builds randomized models. The sequence counter guarantees unique
// names, slugs and SKUs regardless of how the random draws fall.
type Factory struct {
	rng   *rand.Rand
	clock func() time.Time
	seq   int
}

// New creates a Factory from an explicit random source and clock.
func New(rng *rand.Rand, clock func() time.Time) *Factory {
	return &Factory{rng: rng, clock: clock}
}

// Brand builds one brand. Visibility defaults to false, like the service.
func (f *Factory) Brand() models.Brand {
	f.seq++
	name := fmt.Sprintf("%s %s Co %d", f.pick(adjectives), f.pick(nouns), f.seq)

	return models.Brand{
		Name:        name,
		Slug:        slug.Make(name),
		URL:         fmt.Sprintf("https://%s.example.com", slug.Make(name)),
		PrimaryHex:  fmt.Sprintf("#%06x", f.rng.Intn(0x1000000)),
		IsVisible:   false,
		Description: "Seeded brand.",
	}
}

// Product builds one product within every catalog constraint: quantity in
// [0, 2000], price with at most 10 integer and 2 fractional digits, a valid
// type, published_at at the factory clock.
func (f *Factory) Product(brandID *uint) models.Product {
	f.seq++
	name := fmt.Sprintf("%s %s %d", f.pick(adjectives), f.pick(nouns), f.seq)
	now := f.clock()

	// cents in [0, 10000000) keeps the price well inside decimal(10,2)
	price := decimal.New(int64(f.rng.Intn(10_000_000)), -2)

	types := models.ProductTypes()

	return models.Product{
		BrandID:     brandID,
		Name:        name,
		Slug:        slug.Make(name),
		SKU:         fmt.Sprintf("SKU-%05d", f.seq),
		Description: "Seeded product.",
		Image:       fmt.Sprintf("product-attachments/%s.jpg", slug.Make(name)),
		Quantity:    f.rng.Intn(2001),
		Price:       price,
		IsVisible:   true,
		IsFeatured:  f.rng.Intn(2) == 0,
		Type:        types[f.rng.Intn(len(types))],
		PublishedAt: &now,
	}
}

func (f *Factory) pick(list []string) string {
	return list[f.rng.Intn(len(list))]
}
