package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/kirana/app/services"
	"github.com/shashiranjanraj/kirana/pkg/bind"
	"github.com/shashiranjanraj/kirana/pkg/response"
)

// AuthController handles operator login.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a JWT.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(w, map[string]string{"token": token})
}
