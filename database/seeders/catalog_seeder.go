package seeders

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kirana/database/factories"
)

func init() {
	Register("catalog", SeedCatalog)
}

// SeedCatalog creates one brand and 100 products under it.
func SeedCatalog(db *gorm.DB, rng *rand.Rand) error {
	factory := factories.New(rng, time.Now)

	brand := factory.Brand()
	if err := db.Create(&brand).Error; err != nil {
		return err
	}

	for i := 0; i < 100; i++ {
		product := factory.Product(&brand.ID)
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}

	return nil
}
