package v1

import (
	"net/http"

	"github.com/easylaptop/server/dto"
	"github.com/easylaptop/server/middleware"
	"github.com/easylaptop/server/services"
	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login, and profile retrieval
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register handles user registration
// POST /auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Please provide name, email, and password",
		})
		return
	}

	user, token, err := ctrl.auth.Register(req)
	if err != nil {
		respondError(c, err, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    dto.NewPublicUser(user),
	})
}

// Login handles user authentication
// POST /auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Please provide email and password",
		})
		return
	}

	user, token, err := ctrl.auth.Login(req)
	if err != nil {
		respondError(c, err, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.NewPublicUser(user),
	})
}

// GetCurrentUser returns the authenticated caller's profile
// GET /auth/me
func (ctrl *AuthController) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
