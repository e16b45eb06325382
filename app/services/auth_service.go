package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/kirana/app/repositories"
	"github.com/shashiranjanraj/kirana/pkg/auth"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords, so login responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService logs back-office operators in.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Login verifies the operator's credentials and returns a signed JWT.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(user.ID, user.Role)
}
