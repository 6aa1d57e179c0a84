package v1

import (
	"net/http"

	"github.com/easylaptop/server/dto"
	"github.com/easylaptop/server/middleware"
	"github.com/easylaptop/server/services"
	"github.com/gin-gonic/gin"
)

// UserController handles profile updates
type UserController struct {
	auth *services.AuthService
}

// NewUserController creates a new user controller instance
func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

// UpdateProfile updates the caller's name, phone, college, or user type.
// Email and role are immutable through this endpoint.
// PUT /users/profile
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
		})
		return
	}

	updated, err := ctrl.auth.UpdateProfile(user.ID, req)
	if err != nil {
		respondError(c, err, "Server error updating profile")
		return
	}

	c.JSON(http.StatusOK, updated)
}
