package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/pkg/event"
	"github.com/shashiranjanraj/kirana/pkg/metrics"
	"github.com/shashiranjanraj/kirana/pkg/orm"
	"github.com/shashiranjanraj/kirana/pkg/validate"
)

// BrandInput is the write payload for brands. The slug is derived from the
// name with the same rules as products.
type BrandInput struct {
	Name        string `json:"name"        validate:"required,max=255"`
	URL         string `json:"url"         validate:"nullable,url"`
	PrimaryHex  string `json:"primary_hex" validate:"nullable,hex_color"`
	IsVisible   *bool  `json:"is_visible"`
	Description string `json:"description"`
}

// BrandService owns validation and derivation for brands.
type BrandService struct {
	brands *repositories.BrandRepository
	clock  Clock
}

func NewBrandService() *BrandService {
	return NewBrandServiceWithClock(time.Now)
}

func NewBrandServiceWithClock(clock Clock) *BrandService {
	return &BrandService{
		brands: repositories.NewBrandRepository(),
		clock:  clock,
	}
}

// Create validates input, derives the slug, and persists a new brand.
// is_visible defaults to false — brands go live explicitly.
func (s *BrandService) Create(input BrandInput) (models.Brand, error) {
	if errs := validate.Struct(&input); len(errs) > 0 {
		metrics.ValidationFailures.WithLabelValues("brand").Inc()
		return models.Brand{}, &ValidationError{Fields: errs}
	}

	brand := models.Brand{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		URL:         input.URL,
		PrimaryHex:  input.PrimaryHex,
		IsVisible:   boolOr(input.IsVisible, false),
		Description: input.Description,
	}

	if err := s.brands.Create(&brand); err != nil {
		return models.Brand{}, s.conflictError(brand.Slug, 0, err)
	}

	s.afterWrite("create", brand)
	return brand, nil
}

// Update applies input to an existing brand, keeping the slug immutable.
func (s *BrandService) Update(id uint, input BrandInput) (models.Brand, error) {
	brand, err := s.brands.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Brand{}, &NotFoundError{Entity: "brand", ID: id}
		}
		return models.Brand{}, fmt.Errorf("services: load brand %d: %w", id, err)
	}

	if errs := validate.Struct(&input); len(errs) > 0 {
		metrics.ValidationFailures.WithLabelValues("brand").Inc()
		return models.Brand{}, &ValidationError{Fields: errs}
	}

	brand.Name = input.Name
	brand.URL = input.URL
	brand.PrimaryHex = input.PrimaryHex
	brand.IsVisible = boolOr(input.IsVisible, brand.IsVisible)
	brand.Description = input.Description

	if err := s.brands.Update(&brand); err != nil {
		return models.Brand{}, s.conflictError(brand.Slug, brand.ID, err)
	}

	s.afterWrite("update", brand)
	return brand, nil
}

// Delete removes a brand. Products referencing it survive with brand_id
// nulled out by the foreign key policy, so deletion never errors from the
// brand side.
func (s *BrandService) Delete(id uint) error {
	brand, err := s.brands.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "brand", ID: id}
		}
		return fmt.Errorf("services: load brand %d: %w", id, err)
	}

	if err := s.brands.Delete(&brand); err != nil {
		return fmt.Errorf("services: delete brand %d: %w", id, err)
	}

	s.afterWrite("delete", brand)
	return nil
}

// Get loads one brand.
func (s *BrandService) Get(id uint) (models.Brand, error) {
	brand, err := s.brands.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Brand{}, &NotFoundError{Entity: "brand", ID: id}
		}
		return models.Brand{}, fmt.Errorf("services: load brand %d: %w", id, err)
	}
	return brand, nil
}

// List returns brands with pagination.
func (s *BrandService) List(page, perPage int) ([]models.Brand, orm.Pagination, error) {
	return s.brands.All(page, perPage)
}

func (s *BrandService) conflictError(slugVal string, excludeID uint, cause error) error {
	taken, err := s.brands.SlugTaken(slugVal, excludeID)
	if err == nil && taken {
		metrics.ValidationFailures.WithLabelValues("brand").Inc()
		return fieldError("slug", "The slug has already been taken.")
	}
	if errors.Is(cause, gorm.ErrDuplicatedKey) {
		metrics.ValidationFailures.WithLabelValues("brand").Inc()
		return fieldError("slug", "The slug has already been taken.")
	}
	return fmt.Errorf("services: persist brand: %w", cause)
}

func (s *BrandService) afterWrite(operation string, brand models.Brand) {
	metrics.CatalogWrites.WithLabelValues("brand", operation).Inc()
	orm.ForgetCache(repositories.VisibleListingKey)
	event.Fire("brand."+operation+"d", brand)
}
