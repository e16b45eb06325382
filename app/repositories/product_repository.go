package repositories

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/pkg/orm"
)

// ProductListOptions carries the list-view query: free-text search, sort,
// the visibility ternary filter, the brand select filter, and pagination.
type ProductListOptions struct {
	Search  string
	Sort    string // one of the whitelisted columns below
	Desc    bool
	Visible *bool // nil = all, true = visible only, false = hidden only
	BrandID *uint // nil = all brands
	Page    int
	PerPage int
}

// sortableColumns whitelists ORDER BY targets so a query parameter can
// never inject SQL.
var sortableColumns = map[string]string{
	"name":         "name",
	"price":        "price",
	"quantity":     "quantity",
	"published_at": "published_at",
	"created_at":   "created_at",
	"type":         "type",
}

// VisibleListingKey is the cache key for the public storefront listing.
// Written by CachedVisible, dropped by the services after every catalog write.
const VisibleListingKey = "products:visible"

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindByID loads one product with its brand preloaded.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Preload("Brand").Where("id = ?", id).First(&product)
	return product, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return orm.DB().Save(product)
}

// Delete removes a product. Dependent order_items rows are removed by the
// ON DELETE CASCADE constraint.
func (r *ProductRepository) Delete(product *models.Product) error {
	return orm.DB().Delete(product)
}

// List applies search, sort, filters and pagination server-side.
func (r *ProductRepository) List(opts ProductListOptions) ([]models.Product, orm.Pagination, error) {
	q := orm.DB().Model(&models.Product{}).Preload("Brand")

	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		q = q.Where("name LIKE ? OR sku LIKE ?", like, like)
	}
	if opts.Visible != nil {
		q = q.Where("is_visible = ?", *opts.Visible)
	}
	if opts.BrandID != nil {
		q = q.Where("brand_id = ?", *opts.BrandID)
	}

	if col, ok := sortableColumns[opts.Sort]; ok {
		dir := "asc"
		if opts.Desc {
			dir = "desc"
		}
		q = q.Order(col + " " + dir)
	} else {
		q = q.Order("id desc")
	}

	var products []models.Product
	pagination, err := q.GetWithPagination(&products, opts.Page, opts.PerPage)
	return products, pagination, err
}

// CachedVisible returns the visible, published product listing through the
// cache (5 minute TTL). Invalidated on every catalog write.
func (r *ProductRepository) CachedVisible(now time.Time) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().
		Model(&models.Product{}).
		Where("is_visible = ?", true).
		Where("published_at IS NOT NULL AND published_at <= ?", now).
		Order("name asc").
		Cache(VisibleListingKey, 5*time.Minute, &products)
	return products, err
}

// FindConflict reports whether another product (excluding excludeID) already
// holds value in column. column must be one of name, sku, slug.
func (r *ProductRepository) FindConflict(column, value string, excludeID uint) (bool, error) {
	switch column {
	case "name", "sku", "slug":
	default:
		return false, fmt.Errorf("repositories: unexpected conflict column %q", column)
	}

	q := orm.DB().Model(&models.Product{}).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	n, err := q.Count()
	return n > 0, err
}
