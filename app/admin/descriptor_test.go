package admin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kirana/app/admin"
)

func field(t *testing.T, r admin.Resource, name string) admin.Field {
	t.Helper()
	for _, f := range r.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %q not found", name)
	return admin.Field{}
}

func TestProductFormMirrorsConstraints(t *testing.T) {
	r := admin.ProductResource()

	slug := field(t, r, "slug")
	assert.True(t, slug.Disabled, "slug is derived and never editable")

	price := field(t, r, "price")
	assert.Contains(t, price.Rules, "decimal=10,2")

	qty := field(t, r, "quantity")
	assert.Contains(t, qty.Rules, "between=0,2000")

	typ := field(t, r, "type")
	require.Len(t, typ.Options, 2)
	assert.Equal(t, "deliverable", typ.Options[0].Value)
	assert.Equal(t, "downloadable", typ.Options[1].Value)

	image := field(t, r, "image")
	assert.Equal(t, "product-attachments", image.UploadDir)

	brand := field(t, r, "brand_id")
	require.NotNil(t, brand.Relation)
	assert.Equal(t, "brand", brand.Relation.Entity)
}

func TestProductFiltersAndColumns(t *testing.T) {
	r := admin.ProductResource()

	require.Len(t, r.Filters, 2)
	assert.Equal(t, admin.FilterTernary, r.Filters[0].Kind)
	assert.Equal(t, "is_visible", r.Filters[0].Name)
	assert.Equal(t, admin.FilterSelect, r.Filters[1].Kind)

	var names []string
	for _, c := range r.Columns {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"image", "name", "brand.name", "is_visible",
		"price", "quantity", "published_at", "type",
	}, names)
}

func TestBrandResourceRules(t *testing.T) {
	r := admin.BrandResource()

	hex := field(t, r, "primary_hex")
	assert.Contains(t, hex.Rules, "hex_color")

	url := field(t, r, "url")
	assert.Contains(t, url.Rules, "url")

	vis := field(t, r, "is_visible")
	assert.Equal(t, false, vis.Default, "brands start hidden")
}
