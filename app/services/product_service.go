package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/pkg/event"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
	"github.com/shashiranjanraj/kirana/pkg/orm"
	"github.com/shashiranjanraj/kirana/pkg/validate"
)

// Clock supplies the current time. Services take it explicitly so tests and
// seeders control "now" instead of reaching for time.Now.
type Clock func() time.Time

// ProductInput is the write payload for both create and update. A slug is
// never part of the input: it is derived from name on create and immutable
// afterwards.
//
// Quantity is a pointer so an explicit 0 is distinguishable from an absent
// field.
type ProductInput struct {
	Name        string `json:"name"         validate:"required,max=255"`
	SKU         string `json:"sku"          validate:"required,max=100"`
	Price       string `json:"price"        validate:"required,decimal=10,2"`
	Quantity    *int   `json:"quantity"     validate:"required,integer,between=0,2000"`
	Type        string `json:"type"         validate:"required,in=deliverable,downloadable"`
	BrandID     *uint  `json:"brand_id"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsVisible   *bool  `json:"is_visible"`
	IsFeatured  *bool  `json:"is_featured"`
	PublishedAt string `json:"published_at" validate:"nullable,date"`
}

// ProductService owns validation and derivation for catalog products.
type ProductService struct {
	products *repositories.ProductRepository
	brands   *repositories.BrandRepository
	clock    Clock
}

func NewProductService() *ProductService {
	return NewProductServiceWithClock(time.Now)
}

// NewProductServiceWithClock builds a service with an explicit clock.
func NewProductServiceWithClock(clock Clock) *ProductService {
	return &ProductService{
		products: repositories.NewProductRepository(),
		brands:   repositories.NewBrandRepository(),
		clock:    clock,
	}
}

// Create validates input, derives the slug from the name, and persists a new
// product. Defaults: is_visible=true, is_featured=true, published_at=now.
//
// Uniqueness of name, sku and the derived slug is enforced by the database
// constraint alone — there is no pre-check, so two concurrent creates race
// safely and the second fails with a ValidationError naming the colliding
// field.
func (s *ProductService) Create(input ProductInput) (models.Product, error) {
	if err := s.checkInput(input); err != nil {
		return models.Product{}, err
	}

	now := s.clock()
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		// Unreachable after the decimal rule, but never persist garbage.
		metrics.ValidationFailures.WithLabelValues("product").Inc()
		return models.Product{}, fieldError("price", "The price format is invalid.")
	}

	publishedAt, err := s.publishedAt(input.PublishedAt, now)
	if err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		BrandID:     input.BrandID,
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		SKU:         input.SKU,
		Description: input.Description,
		Image:       input.Image,
		Quantity:    *input.Quantity,
		Price:       price,
		IsVisible:   boolOr(input.IsVisible, true),
		IsFeatured:  boolOr(input.IsFeatured, true),
		Type:        models.ProductType(input.Type),
		PublishedAt: publishedAt,
	}

	if err := s.products.Create(&product); err != nil {
		return models.Product{}, s.conflictError(product.Name, product.SKU, product.Slug, 0, err)
	}

	s.afterWrite("create", product)
	return product, nil
}

// Update applies input to an existing product. The slug is neither
// recomputed nor accepted from input. Uniqueness checks exclude the record
// itself.
func (s *ProductService) Update(id uint, input ProductInput) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, &NotFoundError{Entity: "product", ID: id}
		}
		return models.Product{}, fmt.Errorf("services: load product %d: %w", id, err)
	}

	if err := s.checkInput(input); err != nil {
		return models.Product{}, err
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("product").Inc()
		return models.Product{}, fieldError("price", "The price format is invalid.")
	}

	publishedAt := product.PublishedAt
	if input.PublishedAt != "" {
		t, perr := validate.ParseDate(input.PublishedAt)
		if perr != nil {
			metrics.ValidationFailures.WithLabelValues("product").Inc()
			return models.Product{}, fieldError("published_at", "The published_at is not a valid date.")
		}
		publishedAt = &t
	}

	product.BrandID = input.BrandID
	product.Name = input.Name
	product.SKU = input.SKU
	product.Description = input.Description
	product.Image = input.Image
	product.Quantity = *input.Quantity
	product.Price = price
	product.IsVisible = boolOr(input.IsVisible, product.IsVisible)
	product.IsFeatured = boolOr(input.IsFeatured, product.IsFeatured)
	product.Type = models.ProductType(input.Type)
	product.PublishedAt = publishedAt
	product.Brand = nil // re-resolved on next read

	if err := s.products.Update(&product); err != nil {
		return models.Product{}, s.conflictError(product.Name, product.SKU, product.Slug, product.ID, err)
	}

	s.afterWrite("update", product)
	return product, nil
}

// Delete removes a product. Dependent order_items rows cascade at the
// database level.
func (s *ProductService) Delete(id uint) error {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "product", ID: id}
		}
		return fmt.Errorf("services: load product %d: %w", id, err)
	}

	if err := s.products.Delete(&product); err != nil {
		return fmt.Errorf("services: delete product %d: %w", id, err)
	}

	s.afterWrite("delete", product)
	return nil
}

// Get loads one product with its brand.
func (s *ProductService) Get(id uint) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, &NotFoundError{Entity: "product", ID: id}
		}
		return models.Product{}, fmt.Errorf("services: load product %d: %w", id, err)
	}
	return product, nil
}

// List applies the admin list-view query server-side.
func (s *ProductService) List(opts repositories.ProductListOptions) ([]models.Product, orm.Pagination, error) {
	return s.products.List(opts)
}

// ─── Internals ────────────────────────────────────────────────────────────────

// checkInput runs tag validation plus the brand reference check.
func (s *ProductService) checkInput(input ProductInput) error {
	errs := validate.Struct(&input)

	if input.BrandID != nil && errs["brand_id"] == "" {
		exists, err := s.brands.Exists(*input.BrandID)
		if err != nil {
			return fmt.Errorf("services: check brand %d: %w", *input.BrandID, err)
		}
		if !exists {
			errs["brand_id"] = "The selected brand_id is invalid."
		}
	}

	if len(errs) > 0 {
		metrics.ValidationFailures.WithLabelValues("product").Inc()
		return &ValidationError{Fields: errs}
	}
	return nil
}

// publishedAt resolves the availability date: parse when given, default to
// now when absent.
func (s *ProductService) publishedAt(raw string, now time.Time) (*time.Time, error) {
	if raw == "" {
		return &now, nil
	}
	t, err := validate.ParseDate(raw)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("product").Inc()
		return nil, fieldError("published_at", "The published_at is not a valid date.")
	}
	return &t, nil
}

// conflictError attributes a failed write to the colliding unique field.
// Drivers with TranslateError report gorm.ErrDuplicatedKey; for the rest the
// follow-up lookups still find the winner.
func (s *ProductService) conflictError(name, sku, slugVal string, excludeID uint, cause error) error {
	checks := []struct {
		field, value, message string
	}{
		{"name", name, "The name has already been taken."},
		{"sku", sku, "The sku has already been taken."},
		{"slug", slugVal, "The slug has already been taken."},
	}

	for _, c := range checks {
		taken, err := s.products.FindConflict(c.field, c.value, excludeID)
		if err != nil {
			continue
		}
		if taken {
			metrics.ValidationFailures.WithLabelValues("product").Inc()
			return fieldError(c.field, c.message)
		}
	}

	if errors.Is(cause, gorm.ErrDuplicatedKey) {
		// Duplicate reported by the driver but the winner is already gone.
		metrics.ValidationFailures.WithLabelValues("product").Inc()
		return fieldError("name", "The name has already been taken.")
	}

	return fmt.Errorf("services: persist product: %w", cause)
}

// afterWrite fires the change event, bumps the write counter, and drops the
// cached public listing.
func (s *ProductService) afterWrite(operation string, product models.Product) {
	metrics.CatalogWrites.WithLabelValues("product", operation).Inc()
	orm.ForgetCache(repositories.VisibleListingKey)
	event.Fire("product."+operation+"d", product)
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
