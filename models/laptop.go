package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Condition represents the physical state of a listed laptop
type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

// ValidCondition reports whether c is one of the allowed conditions.
func ValidCondition(c Condition) bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

// ListingStatus represents the lifecycle state of a listing
type ListingStatus string

const (
	StatusActive   ListingStatus = "active"
	StatusSold     ListingStatus = "sold"
	StatusInactive ListingStatus = "inactive"
)

// ValidListingStatus reports whether s is one of the allowed statuses.
func ValidListingStatus(s ListingStatus) bool {
	switch s {
	case StatusActive, StatusSold, StatusInactive:
		return true
	}
	return false
}

// ImageList is an ordered list of stored image references, persisted as a
// JSON text column so the same schema works on Postgres and SQLite.
type ImageList []string

// Value implements driver.Valuer.
func (l ImageList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *ImageList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported image list type %T", value)
	}
}

// Laptop represents a used-laptop listing
type Laptop struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Images      ImageList `json:"images" gorm:"type:text"`

	// Specifications
	Brand      string    `json:"brand" gorm:"not null"`
	Model      string    `json:"model"`
	Processor  string    `json:"processor"`
	RAM        string    `json:"ram"`
	Storage    string    `json:"storage"`
	ScreenSize string    `json:"screenSize"`
	Condition  Condition `json:"condition" gorm:"type:varchar(10);default:'Good'"`
	Year       int       `json:"year,omitempty"`

	// Seller linkage; SellerID is set once at creation and never reassigned.
	SellerID string `json:"sellerId" gorm:"not null;index;type:uuid"`
	Seller   *User  `json:"seller,omitempty" gorm:"foreignKey:SellerID"`

	// Contact information, defaulting to the seller's account values
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	Status    ListingStatus `json:"status" gorm:"type:varchar(10);default:'active'"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (l *Laptop) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
