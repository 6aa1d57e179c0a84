package repositories

import (
	"strings"

	"github.com/easylaptop/server/database"
	"github.com/easylaptop/server/dto"
	"github.com/easylaptop/server/models"
)

// LaptopRepository handles database operations for laptop listings
type LaptopRepository struct{}

// NewLaptopRepository creates a new laptop repository instance
func NewLaptopRepository() *LaptopRepository {
	return &LaptopRepository{}
}

// FindByID retrieves a listing by its ID with seller information
func (r *LaptopRepository) FindByID(id string) (models.Laptop, error) {
	var laptop models.Laptop
	result := database.DB.Preload("Seller").First(&laptop, "id = ?", id)
	return laptop, result.Error
}

// Create inserts a new listing into the database
func (r *LaptopRepository) Create(laptop models.Laptop) (models.Laptop, error) {
	result := database.DB.Create(&laptop)
	return laptop, result.Error
}

// Update persists changes to an existing listing
func (r *LaptopRepository) Update(laptop models.Laptop) error {
	result := database.DB.Save(&laptop)
	return result.Error
}

// Delete removes a listing from the database
func (r *LaptopRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Laptop{}, "id = ?", id)
	return result.Error
}

// FindWithFilter retrieves listings matching the filter, with seller
// information, newest first. LOWER(...) LIKE is used instead of ILIKE so the
// same query runs on Postgres and SQLite.
func (r *LaptopRepository) FindWithFilter(filter dto.LaptopFilter) ([]models.Laptop, error) {
	db := database.DB.Model(&models.Laptop{}).Preload("Seller")

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		db = db.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filter.Brand != "" {
		db = db.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(filter.Brand)+"%")
	}

	if filter.MinPrice != nil {
		db = db.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		db = db.Where("price <= ?", *filter.MaxPrice)
	}

	if filter.Condition != "" {
		db = db.Where("condition = ?", filter.Condition)
	}

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if filter.SellerIDs != nil {
		db = db.Where("seller_id IN ?", filter.SellerIDs)
	}

	var laptops []models.Laptop
	result := db.Order("created_at DESC").Find(&laptops)
	return laptops, result.Error
}
