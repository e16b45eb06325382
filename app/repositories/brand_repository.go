package repositories

import (
	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/pkg/orm"
)

// BrandRepository handles database operations for Brand.
type BrandRepository struct{}

func NewBrandRepository() *BrandRepository {
	return &BrandRepository{}
}

// FindByID looks up a brand by primary key.
func (r *BrandRepository) FindByID(id uint) (models.Brand, error) {
	var brand models.Brand
	err := orm.DB().Model(&models.Brand{}).Where("id = ?", id).First(&brand)
	return brand, err
}

// Exists reports whether a brand with the given id exists.
func (r *BrandRepository) Exists(id uint) (bool, error) {
	n, err := orm.DB().Model(&models.Brand{}).Where("id = ?", id).Count()
	return n > 0, err
}

// Create persists a new brand record.
func (r *BrandRepository) Create(brand *models.Brand) error {
	return orm.DB().Create(brand)
}

// Update persists changes to an existing brand.
func (r *BrandRepository) Update(brand *models.Brand) error {
	return orm.DB().Save(brand)
}

// Delete removes a brand. Products referencing it keep existing with
// brand_id nulled out by the ON DELETE SET NULL constraint.
func (r *BrandRepository) Delete(brand *models.Brand) error {
	return orm.DB().Delete(brand)
}

// All returns all brands with pagination, newest first.
func (r *BrandRepository) All(page, perPage int) ([]models.Brand, orm.Pagination, error) {
	var brands []models.Brand
	pagination, err := orm.DB().
		Model(&models.Brand{}).
		Order("id desc").
		GetWithPagination(&brands, page, perPage)
	return brands, pagination, err
}

// SlugTaken reports whether another brand (excluding excludeID) already
// holds slug.
func (r *BrandRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	q := orm.DB().Model(&models.Brand{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	n, err := q.Count()
	return n > 0, err
}
