package seeders

import (
	"math/rand"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/config"
	"github.com/shashiranjanraj/kirana/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
}

// SeedUsers creates the default back-office operator. Idempotent: skips
// when the account already exists.
func SeedUsers(db *gorm.DB, _ *rand.Rand) error {
	email := config.Get("ADMIN_EMAIL", "admin@kirana.test")

	var n int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "password"))
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     "Admin",
		Email:    email,
		Password: hash,
		Role:     "admin",
	}).Error
}
