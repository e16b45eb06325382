package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/database"
)

func TestBrandCreateDefaultsHidden(t *testing.T) {
	setupDB(t)
	svc := services.NewBrandServiceWithClock(fixedClock)

	brand, err := svc.Create(services.BrandInput{
		Name:       "Logi Tech",
		URL:        "https://logi.example.com",
		PrimaryHex: "#ff6600",
	})
	require.NoError(t, err)

	assert.Equal(t, "logi-tech", brand.Slug)
	assert.False(t, brand.IsVisible, "brands start hidden")
}

func TestBrandRejectsBadColorAndURL(t *testing.T) {
	setupDB(t)
	svc := services.NewBrandServiceWithClock(fixedClock)

	_, err := svc.Create(services.BrandInput{Name: "Acme", PrimaryHex: "orange"})
	ve, ok := services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "primary_hex")

	_, err = svc.Create(services.BrandInput{Name: "Acme", URL: "not a url"})
	ve, ok = services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "url")
}

func TestBrandDuplicateSlug(t *testing.T) {
	setupDB(t)
	svc := services.NewBrandServiceWithClock(fixedClock)

	_, err := svc.Create(services.BrandInput{Name: "Acme Co"})
	require.NoError(t, err)

	_, err = svc.Create(services.BrandInput{Name: "Acme---Co"})
	ve, ok := services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "slug")
}

func TestBrandDeleteNullsProductReferences(t *testing.T) {
	setupDB(t)
	brands := services.NewBrandServiceWithClock(fixedClock)
	products := services.NewProductServiceWithClock(fixedClock)

	brand, err := brands.Create(services.BrandInput{Name: "Acme Co"})
	require.NoError(t, err)

	input := validInput()
	input.BrandID = &brand.ID
	product, err := products.Create(input)
	require.NoError(t, err)

	// Deleting the brand must not error, and its products must survive
	// with brand_id nulled out.
	require.NoError(t, brands.Delete(brand.ID))

	var survivor models.Product
	require.NoError(t, database.DB.First(&survivor, product.ID).Error)
	assert.Nil(t, survivor.BrandID)
}

func TestBrandNotFound(t *testing.T) {
	setupDB(t)
	svc := services.NewBrandServiceWithClock(fixedClock)

	_, err := svc.Update(42, services.BrandInput{Name: "Ghost"})
	_, ok := services.AsNotFound(err)
	assert.True(t, ok)

	err = svc.Delete(42)
	_, ok = services.AsNotFound(err)
	assert.True(t, ok)
}
