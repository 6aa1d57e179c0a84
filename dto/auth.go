package dto

import (
	"github.com/easylaptop/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Phone    string          `json:"phone"`
	College  string          `json:"college"`
	UserType models.UserType `json:"userType"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PublicUser is the user shape returned from auth endpoints
type PublicUser struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	College  string          `json:"college"`
	UserType models.UserType `json:"userType"`
}

// NewPublicUser maps a user record to its public shape.
func NewPublicUser(u *models.User) PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		College:  u.College,
		UserType: u.UserType,
	}
}

// AuthResponse represents the response after registration or login
type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    PublicUser `json:"user"`
}
