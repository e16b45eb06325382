package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/pkg/migration"
)

func init() {
	migration.Register("20230909000000_create_users_table", &CreateUsersTable{})
	migration.Register("20230909183630_create_brands_table", &CreateBrandsTable{})
	migration.Register("20230909190000_create_products_table", &CreateProductsTable{})
	migration.Register("20230909230000_create_orders_table", &CreateOrdersTable{})
	migration.Register("20230909230842_create_order_items_table", &CreateOrderItemsTable{})
}

// -------- users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- brands --------

type CreateBrandsTable struct{}

func (m *CreateBrandsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Brand{})
}

func (m *CreateBrandsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("brands")
}

// -------- products --------
// brand_id carries ON DELETE SET NULL: removing a brand keeps its products.

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- orders --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

// -------- order_items --------
// Rows cascade-delete with either parent (order or product).

type CreateOrderItemsTable struct{}

func (m *CreateOrderItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderItem{})
}

func (m *CreateOrderItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items")
}
