package dto

import (
	"strings"

	"github.com/shopfront-labs/storefront/internal/domain"
)

// LoginForm is posted by the login page.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Credentials converts the form for the backend.
func (f LoginForm) Credentials() domain.Credentials {
	return domain.Credentials{Email: strings.TrimSpace(f.Email), Password: f.Password}
}

// RegisterForm is posted by the registration page.
type RegisterForm struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Registration converts the form for the backend.
func (f RegisterForm) Registration() domain.Registration {
	return domain.Registration{
		Username: strings.TrimSpace(f.Username),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
	}
}
