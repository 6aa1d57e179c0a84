package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/easylaptop/server/config"
	"github.com/easylaptop/server/dto"
	"github.com/easylaptop/server/models"
	"github.com/easylaptop/server/repositories"
	"github.com/easylaptop/server/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LaptopService handles business logic for laptop listings
type LaptopService struct {
	cfg     *config.Config
	laptops *repositories.LaptopRepository
	users   *repositories.UserRepository
}

// NewLaptopService creates a new laptop service instance
func NewLaptopService(cfg *config.Config) *LaptopService {
	return &LaptopService{
		cfg:     cfg,
		laptops: repositories.NewLaptopRepository(),
		users:   repositories.NewUserRepository(),
	}
}

// CreateListing validates the form and stores a new listing owned by seller.
// imageRefs are the already-stored upload references (at most the configured
// maximum, enforced at upload time).
func (s *LaptopService) CreateListing(form dto.LaptopForm, imageRefs []string, seller *models.User) (*models.Laptop, error) {
	if form.Title == "" || form.Description == "" || form.Price == "" || form.Brand == "" {
		return nil, fmt.Errorf("%w: please provide title, description, price, and brand", models.ErrInvalidInput)
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("%w: price must be a non-negative number", models.ErrInvalidInput)
	}

	condition := models.ConditionGood
	if form.Condition != "" {
		condition = models.Condition(form.Condition)
		if !models.ValidCondition(condition) {
			return nil, fmt.Errorf("%w: condition must be Excellent, Good, Fair, or Poor", models.ErrInvalidInput)
		}
	}

	year := 0
	if form.Year != "" {
		year, err = strconv.Atoi(form.Year)
		if err != nil || year < 2000 {
			return nil, fmt.Errorf("%w: year must be 2000 or later", models.ErrInvalidInput)
		}
	}

	status := models.StatusActive
	if form.Status != "" {
		status = models.ListingStatus(form.Status)
		if !models.ValidListingStatus(status) {
			return nil, fmt.Errorf("%w: status must be active, sold, or inactive", models.ErrInvalidInput)
		}
	}

	// Contact details default to the seller's account values
	contactEmail := form.ContactEmail
	if contactEmail == "" {
		contactEmail = seller.Email
	}
	contactPhone := form.ContactPhone
	if contactPhone == "" {
		contactPhone = seller.Phone
	}

	laptop, err := s.laptops.Create(models.Laptop{
		Title:        form.Title,
		Description:  form.Description,
		Price:        price,
		Images:       models.ImageList(imageRefs),
		Brand:        form.Brand,
		Model:        form.Model,
		Processor:    form.Processor,
		RAM:          form.RAM,
		Storage:      form.Storage,
		ScreenSize:   form.ScreenSize,
		Condition:    condition,
		Year:         year,
		SellerID:     seller.ID,
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
		Status:       status,
	})
	if err != nil {
		return nil, err
	}

	laptop.Seller = seller
	return &laptop, nil
}

// ListListings retrieves listings matching the filter. collegeFilter set to
// "myCollege" scopes results to sellers sharing the caller's college; an
// unauthenticated caller or one without a college gets unscoped results, and
// a college no seller belongs to yields an empty slice rather than an error.
func (s *LaptopService) ListListings(filter dto.LaptopFilter, collegeFilter string, caller *models.User) ([]models.Laptop, error) {
	// Default to active listings only
	if filter.Status == "" {
		filter.Status = string(models.StatusActive)
	}

	if collegeFilter == "myCollege" && caller != nil && caller.College != "" {
		ids, err := s.users.FindIDsByCollege(caller.College)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []models.Laptop{}, nil
		}
		filter.SellerIDs = ids
	}

	laptops, err := s.laptops.FindWithFilter(filter)
	if err != nil {
		return nil, err
	}
	if laptops == nil {
		laptops = []models.Laptop{}
	}
	return laptops, nil
}

// GetListing retrieves a single listing by ID with seller information
func (s *LaptopService) GetListing(id string) (*models.Laptop, error) {
	laptop, err := s.findExisting(id)
	if err != nil {
		return nil, err
	}
	return laptop, nil
}

// MyListings retrieves all listings owned by the given seller, newest first
func (s *LaptopService) MyListings(sellerID string) ([]models.Laptop, error) {
	laptops, err := s.laptops.FindWithFilter(dto.LaptopFilter{SellerIDs: []string{sellerID}})
	if err != nil {
		return nil, err
	}
	if laptops == nil {
		laptops = []models.Laptop{}
	}
	return laptops, nil
}

// UpdateListing applies the provided fields to a listing. Existence is
// checked before ownership, so a non-owner of a real listing always gets
// ErrForbidden. Empty form values leave fields unchanged and new images are
// appended to the existing sequence, never replacing it.
func (s *LaptopService) UpdateListing(id, callerID string, form dto.LaptopForm, newImageRefs []string) (*models.Laptop, error) {
	laptop, err := s.findExisting(id)
	if err != nil {
		return nil, err
	}
	if laptop.SellerID != callerID {
		return nil, fmt.Errorf("%w: you can only update your own listings", models.ErrForbidden)
	}

	if form.Title != "" {
		laptop.Title = form.Title
	}
	if form.Description != "" {
		laptop.Description = form.Description
	}
	if form.Price != "" {
		price, err := strconv.ParseFloat(form.Price, 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("%w: price must be a non-negative number", models.ErrInvalidInput)
		}
		laptop.Price = price
	}
	if form.Brand != "" {
		laptop.Brand = form.Brand
	}
	if form.Model != "" {
		laptop.Model = form.Model
	}
	if form.Processor != "" {
		laptop.Processor = form.Processor
	}
	if form.RAM != "" {
		laptop.RAM = form.RAM
	}
	if form.Storage != "" {
		laptop.Storage = form.Storage
	}
	if form.ScreenSize != "" {
		laptop.ScreenSize = form.ScreenSize
	}
	if form.Condition != "" {
		condition := models.Condition(form.Condition)
		if !models.ValidCondition(condition) {
			return nil, fmt.Errorf("%w: condition must be Excellent, Good, Fair, or Poor", models.ErrInvalidInput)
		}
		laptop.Condition = condition
	}
	if form.Year != "" {
		year, err := strconv.Atoi(form.Year)
		if err != nil || year < 2000 {
			return nil, fmt.Errorf("%w: year must be 2000 or later", models.ErrInvalidInput)
		}
		laptop.Year = year
	}
	if form.ContactEmail != "" {
		laptop.ContactEmail = form.ContactEmail
	}
	if form.ContactPhone != "" {
		laptop.ContactPhone = form.ContactPhone
	}
	if form.Status != "" {
		status := models.ListingStatus(form.Status)
		if !models.ValidListingStatus(status) {
			return nil, fmt.Errorf("%w: status must be active, sold, or inactive", models.ErrInvalidInput)
		}
		laptop.Status = status
	}

	if len(newImageRefs) > 0 {
		laptop.Images = append(laptop.Images, newImageRefs...)
	}

	if err := s.laptops.Update(*laptop); err != nil {
		return nil, err
	}
	return laptop, nil
}

// DeleteListing removes a listing and its stored images. Image files that
// are already gone are tolerated; their removal never fails the request.
func (s *LaptopService) DeleteListing(id, callerID string) error {
	laptop, err := s.findExisting(id)
	if err != nil {
		return err
	}
	if laptop.SellerID != callerID {
		return fmt.Errorf("%w: you can only delete your own listings", models.ErrForbidden)
	}

	utils.RemoveImages(s.cfg.UploadDir, laptop.Images)

	return s.laptops.Delete(id)
}

// findExisting resolves an id to a listing, mapping malformed ids and missing
// rows to ErrNotFound before any ownership decision is made.
func (s *LaptopService) findExisting(id string) (*models.Laptop, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrNotFound
	}
	laptop, err := s.laptops.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &laptop, nil
}
