package database

import (
	"errors"
	"log"

	"github.com/easylaptop/server/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoData inserts a demo seller and a few listings when the laptops
// table is empty. Opt-in via SEED_DEMO_DATA; production deployments leave it
// off and nothing else depends on the seeded rows.
func SeedDemoData(bcryptCost int) error {
	var laptopCount int64
	if err := DB.Model(&models.Laptop{}).Count(&laptopCount).Error; err != nil {
		return err
	}
	if laptopCount > 0 {
		return nil
	}

	var demoUser models.User
	err := DB.Where("email = ?", "demo@easylaptop.com").First(&demoUser).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
		if hashErr != nil {
			return hashErr
		}
		demoUser = models.User{
			Name:     "Demo Seller",
			Email:    "demo@easylaptop.com",
			Password: string(hash),
			Phone:    "9999999999",
			College:  "Demo College",
			UserType: models.UserTypeSeller,
			Role:     models.RoleStudent,
		}
		if err := DB.Create(&demoUser).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	demoLaptops := []models.Laptop{
		{
			Title:        "Dell Inspiron 15",
			Description:  "Perfect for students. Good battery life and performance for coding and online classes.",
			Price:        35000,
			Brand:        "Dell",
			Model:        "Inspiron 15 3000",
			Processor:    "Intel Core i5 10th Gen",
			RAM:          "8GB",
			Storage:      "512GB SSD",
			ScreenSize:   "15.6 inch",
			Condition:    models.ConditionGood,
			Year:         2021,
			SellerID:     demoUser.ID,
			ContactEmail: demoUser.Email,
			ContactPhone: demoUser.Phone,
			Status:       models.StatusActive,
		},
		{
			Title:        "HP Pavilion Gaming",
			Description:  "Gaming and programming laptop with dedicated graphics. Great for heavy workloads.",
			Price:        55000,
			Brand:        "HP",
			Model:        "Pavilion Gaming 15",
			Processor:    "AMD Ryzen 5",
			RAM:          "16GB",
			Storage:      "512GB SSD",
			ScreenSize:   "15.6 inch",
			Condition:    models.ConditionExcellent,
			Year:         2022,
			SellerID:     demoUser.ID,
			ContactEmail: demoUser.Email,
			ContactPhone: demoUser.Phone,
			Status:       models.StatusActive,
		},
		{
			Title:        "Apple MacBook Air",
			Description:  "Lightweight MacBook Air, ideal for design, writing, and web development.",
			Price:        70000,
			Brand:        "Apple",
			Model:        "MacBook Air M1",
			Processor:    "Apple M1",
			RAM:          "8GB",
			Storage:      "256GB SSD",
			ScreenSize:   "13.3 inch",
			Condition:    models.ConditionExcellent,
			Year:         2021,
			SellerID:     demoUser.ID,
			ContactEmail: demoUser.Email,
			ContactPhone: demoUser.Phone,
			Status:       models.StatusActive,
		},
	}

	if err := DB.Create(&demoLaptops).Error; err != nil {
		return err
	}

	log.Println("✅ Inserted demo laptop data")
	return nil
}
