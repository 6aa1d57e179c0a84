package dto

import "github.com/easylaptop/server/models"

// UpdateProfileRequest carries the mutable profile fields. Email and role are
// intentionally absent; they cannot be changed through this path.
type UpdateProfileRequest struct {
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
	College  string          `json:"college"`
	UserType models.UserType `json:"userType"`
}
