package repositories

import (
	"strings"

	"github.com/easylaptop/server/database"
	"github.com/easylaptop/server/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by their ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email. Emails are stored lowercase, so the
// lookup is case-insensitive.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email)))
	return user, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// Update persists changes to an existing user
func (r *UserRepository) Update(user models.User) error {
	result := database.DB.Save(&user)
	return result.Error
}

// FindIDsByCollege returns the ids of all users whose college matches
// (case-insensitive exact match).
func (r *UserRepository) FindIDsByCollege(college string) ([]string, error) {
	var ids []string
	result := database.DB.Model(&models.User{}).
		Where("LOWER(college) = LOWER(?)", college).
		Pluck("id", &ids)
	return ids, result.Error
}
