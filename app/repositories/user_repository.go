package repositories

import (
	"github.com/shashiranjanraj/kirana/app/models"
	"github.com/shashiranjanraj/kirana/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail looks up an operator by email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("email = ?", email).First(&user)
	return user, err
}

// FindByID looks up an operator by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("id = ?", id).First(&user)
	return user, err
}

// Create persists a new operator record.
func (r *UserRepository) Create(user *models.User) error {
	return orm.DB().Create(user)
}
