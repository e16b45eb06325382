package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/database"
	"github.com/shashiranjanraj/kirana/pkg/event"
	"github.com/shashiranjanraj/kirana/pkg/orm"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// setupDB points the global connection at a fresh in-memory sqlite database
// with foreign keys enforced, so SET NULL and CASCADE behave like the real
// schema.
func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	database.DB = db
	event.Flush()
}

func validInput() services.ProductInput {
	qty := 50
	return services.ProductInput{
		Name:     "Wireless Mouse",
		SKU:      "WM-100",
		Price:    "24.99",
		Quantity: &qty,
		Type:     "deliverable",
	}
}

func TestCreateDerivesSlugAndDefaults(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	product, err := svc.Create(validInput())
	require.NoError(t, err)

	assert.Equal(t, "wireless-mouse", product.Slug)
	assert.True(t, product.IsVisible)
	assert.True(t, product.IsFeatured)
	require.NotNil(t, product.PublishedAt)
	assert.Equal(t, testNow, product.PublishedAt.UTC())
	assert.Equal(t, "24.99", product.Price.StringFixed(2))
	assert.NotZero(t, product.ID)
}

func TestCreateDuplicateName(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	_, err := svc.Create(validInput())
	require.NoError(t, err)

	dup := validInput()
	dup.SKU = "WM-200"
	dup.Name = "Wireless Mouse" // same name, same slug — name wins attribution
	_, err = svc.Create(dup)

	ve, ok := services.AsValidation(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Contains(t, ve.Fields, "name")
}

func TestCreateDuplicateSKU(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	_, err := svc.Create(validInput())
	require.NoError(t, err)

	dup := validInput()
	dup.Name = "Optical Mouse"
	_, err = svc.Create(dup) // same SKU

	ve, ok := services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "sku")
}

func TestCreateDuplicateSlug(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	_, err := svc.Create(validInput())
	require.NoError(t, err)

	// Different name, different SKU — but the same derived slug.
	dup := validInput()
	dup.Name = "Wireless--Mouse!"
	dup.SKU = "WM-300"
	_, err = svc.Create(dup)

	ve, ok := services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "slug")
}

func TestPriceBoundaries(t *testing.T) {
	accepted := []string{"99.99", "0", "9999999999.99"}
	rejected := []string{"99.999", "-1", "12345678901"}

	for _, price := range accepted {
		setupDB(t)
		svc := services.NewProductServiceWithClock(fixedClock)

		input := validInput()
		input.Price = price
		_, err := svc.Create(input)
		assert.NoError(t, err, "price %q should be accepted", price)
	}

	for _, price := range rejected {
		setupDB(t)
		svc := services.NewProductServiceWithClock(fixedClock)

		input := validInput()
		input.Price = price
		_, err := svc.Create(input)

		ve, ok := services.AsValidation(err)
		require.True(t, ok, "price %q should be rejected", price)
		assert.Contains(t, ve.Fields, "price")
	}
}

func TestQuantityBoundaries(t *testing.T) {
	for _, qty := range []int{0, 2000} {
		setupDB(t)
		svc := services.NewProductServiceWithClock(fixedClock)

		input := validInput()
		q := qty
		input.Quantity = &q
		_, err := svc.Create(input)
		assert.NoError(t, err, "quantity %d should be accepted", qty)
	}

	for _, qty := range []int{-1, 2001} {
		setupDB(t)
		svc := services.NewProductServiceWithClock(fixedClock)

		input := validInput()
		q := qty
		input.Quantity = &q
		_, err := svc.Create(input)

		ve, ok := services.AsValidation(err)
		require.True(t, ok, "quantity %d should be rejected", qty)
		assert.Contains(t, ve.Fields, "quantity")
	}
}

func TestQuantityRequired(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	input := validInput()
	input.Quantity = nil
	_, err := svc.Create(input)

	ve, ok := services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "quantity")
}

func TestInvalidType(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	input := validInput()
	input.Type = "streamable"
	_, err := svc.Create(input)

	ve, ok := services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "type")
}

func TestUnknownBrandRejected(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	input := validInput()
	missing := uint(999)
	input.BrandID = &missing
	_, err := svc.Create(input)

	ve, ok := services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "brand_id")
}

func TestUpdateNeverChangesSlug(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	product, err := svc.Create(validInput())
	require.NoError(t, err)

	input := validInput()
	input.Name = "Bluetooth Trackball"
	updated, err := svc.Update(product.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "Bluetooth Trackball", updated.Name)
	assert.Equal(t, "wireless-mouse", updated.Slug, "slug must be immutable")
}

func TestUpdateExcludesSelfFromUniqueness(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	product, err := svc.Create(validInput())
	require.NoError(t, err)

	// Re-submitting the same values must not collide with itself.
	_, err = svc.Update(product.ID, validInput())
	assert.NoError(t, err)
}

func TestUpdateDuplicateAgainstOther(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	_, err := svc.Create(validInput())
	require.NoError(t, err)

	other := validInput()
	other.Name = "Optical Mouse"
	other.SKU = "OM-100"
	second, err := svc.Create(other)
	require.NoError(t, err)

	steal := validInput()
	steal.Name = "Optical Mouse 2"
	steal.SKU = "WM-100" // already taken by the first product
	_, err = svc.Update(second.ID, steal)

	ve, ok := services.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "sku")
}

func TestUpdateNotFound(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	_, err := svc.Update(42, validInput())
	_, ok := services.AsNotFound(err)
	assert.True(t, ok)
}

func TestDeleteNotFound(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	err := svc.Delete(42)
	_, ok := services.AsNotFound(err)
	assert.True(t, ok)
}

func TestDeleteCascadesOrderItems(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	product, err := svc.Create(validInput())
	require.NoError(t, err)

	order := models.Order{UserID: 1, Total: decimal.New(2499, -2)}
	require.NoError(t, database.DB.Create(&order).Error)
	item := models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  1,
		UnitPrice: product.Price,
	}
	require.NoError(t, database.DB.Create(&item).Error)

	require.NoError(t, svc.Delete(product.ID))

	var n int64
	require.NoError(t, database.DB.Model(&models.OrderItem{}).Where("product_id = ?", product.ID).Count(&n).Error)
	assert.Zero(t, n, "order items must cascade with the product")
}

func TestListFilters(t *testing.T) {
	setupDB(t)
	svc := services.NewProductServiceWithClock(fixedClock)

	hidden := false
	for i, name := range []string{"Wireless Mouse", "Wired Mouse", "USB Hub"} {
		input := validInput()
		input.Name = name
		input.SKU = "SKU-" + name
		if i == 2 {
			input.IsVisible = &hidden
		}
		_, err := svc.Create(input)
		require.NoError(t, err)
	}

	visible := true
	items, pagination, err := svc.List(repositories.ProductListOptions{
		Search:  "Mouse",
		Visible: &visible,
		Sort:    "name",
		Page:    1,
		PerPage: 10,
	})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.EqualValues(t, 2, pagination.Total)
	assert.Equal(t, "Wired Mouse", items[0].Name) // sorted ascending
}

// memoryStore is an in-process stand-in for the Redis store so the cached
// listing round trip runs without a server.
type memoryStore struct {
	entries map[string][]byte
}

func newMemoryStore() *memoryStore { return &memoryStore{entries: map[string][]byte{}} }

func (m *memoryStore) Get(key string, dest interface{}) bool {
	raw, ok := m.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (m *memoryStore) Set(key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryStore) Forget(keys ...string) {
	for _, key := range keys {
		delete(m.entries, key)
	}
}

func TestWritesInvalidateCachedVisibleListing(t *testing.T) {
	setupDB(t)
	store := newMemoryStore()
	orm.CacheStore = store
	t.Cleanup(func() { orm.CacheStore = nil })

	svc := services.NewProductServiceWithClock(fixedClock)
	repo := repositories.NewProductRepository()

	created, err := svc.Create(validInput())
	require.NoError(t, err)

	listing, err := repo.CachedVisible(testNow)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Contains(t, store.entries, repositories.VisibleListingKey)

	// A row slipped in behind the cache stays invisible until a service
	// write drops the key.
	published := testNow
	sneaked := models.Product{
		Name:        "Mechanical Keyboard",
		Slug:        "mechanical-keyboard",
		SKU:         "MK-200",
		Price:       decimal.New(4999, -2),
		IsVisible:   true,
		Type:        models.ProductTypeDeliverable,
		PublishedAt: &published,
	}
	require.NoError(t, database.DB.Create(&sneaked).Error)

	listing, err = repo.CachedVisible(testNow)
	require.NoError(t, err)
	assert.Len(t, listing, 1, "stale cache should keep serving the old listing")

	_, err = svc.Update(created.ID, validInput())
	require.NoError(t, err)
	assert.NotContains(t, store.entries, repositories.VisibleListingKey)

	listing, err = repo.CachedVisible(testNow)
	require.NoError(t, err)
	assert.Len(t, listing, 2, "listing should be rebuilt after the write")

	// Brand writes invalidate too: the listing embeds brand data.
	brands := services.NewBrandServiceWithClock(fixedClock)
	_, err = brands.Create(services.BrandInput{Name: "Logi"})
	require.NoError(t, err)
	assert.NotContains(t, store.entries, repositories.VisibleListingKey)
}
