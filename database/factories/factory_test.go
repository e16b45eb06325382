package factories_test

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/shashiranjanraj/kirana/database/factories"
)

var pricePattern = regexp.MustCompile(`^\d{1,10}(\.\d{0,2})?$`)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
}

func TestDeterministicGivenSeed(t *testing.T) {
	a := factories.New(rand.New(rand.NewSource(7)), fixedClock)
	b := factories.New(rand.New(rand.NewSource(7)), fixedClock)

	for i := 0; i < 20; i++ {
		pa := a.Product(nil)
		pb := b.Product(nil)
		if pa.Name != pb.Name || pa.SKU != pb.SKU || !pa.Price.Equal(pb.Price) || pa.Quantity != pb.Quantity {
			t.Fatalf("same seed diverged at %d: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestProductsRespectConstraints(t *testing.T) {
	f := factories.New(rand.New(rand.NewSource(1)), fixedClock)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		p := f.Product(nil)

		if p.Quantity < 0 || p.Quantity > 2000 {
			t.Errorf("quantity %d out of range", p.Quantity)
		}
		if !pricePattern.MatchString(p.Price.StringFixed(2)) {
			t.Errorf("price %s violates the pattern", p.Price.StringFixed(2))
		}
		if !p.Type.Valid() {
			t.Errorf("invalid type %q", p.Type)
		}
		if p.PublishedAt == nil || !p.PublishedAt.Equal(fixedClock()) {
			t.Error("published_at must come from the factory clock")
		}
		for _, key := range []string{p.Name, p.Slug, p.SKU} {
			if seen[key] {
				t.Fatalf("duplicate value %q", key)
			}
			seen[key] = true
		}
	}
}

func TestBrandsRespectConstraints(t *testing.T) {
	f := factories.New(rand.New(rand.NewSource(1)), fixedClock)
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	for i := 0; i < 50; i++ {
		b := f.Brand()
		if b.IsVisible {
			t.Error("factory brands start hidden")
		}
		if !hex.MatchString(b.PrimaryHex) {
			t.Errorf("primary_hex %q is not a hex color", b.PrimaryHex)
		}
		if b.Slug == "" || b.Name == "" {
			t.Error("brand must have a name and slug")
		}
	}
}
