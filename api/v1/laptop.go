package v1

import (
	"net/http"
	"strconv"

	"github.com/easylaptop/server/config"
	"github.com/easylaptop/server/dto"
	"github.com/easylaptop/server/middleware"
	"github.com/easylaptop/server/services"
	"github.com/easylaptop/server/utils"
	"github.com/gin-gonic/gin"
)

// LaptopController handles laptop listing endpoints
type LaptopController struct {
	cfg     *config.Config
	laptops *services.LaptopService
}

// NewLaptopController creates a new laptop controller instance
func NewLaptopController(cfg *config.Config, laptops *services.LaptopService) *LaptopController {
	return &LaptopController{cfg: cfg, laptops: laptops}
}

// List returns listings matching the query filters. Authentication is
// optional; a logged-in caller may additionally scope results to their
// college with collegeFilter=myCollege.
// GET /laptops
func (ctrl *LaptopController) List(c *gin.Context) {
	filter := dto.LaptopFilter{
		Search:    c.Query("search"),
		Brand:     c.Query("brand"),
		Condition: c.Query("condition"),
		Status:    c.Query("status"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if price, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &price
		}
	}

	caller, _ := middleware.CurrentUser(c)

	laptops, err := ctrl.laptops.ListListings(filter, c.Query("collegeFilter"), caller)
	if err != nil {
		respondError(c, err, "Server error retrieving laptops")
		return
	}

	c.JSON(http.StatusOK, laptops)
}

// Get returns a single listing by ID
// GET /laptops/:id
func (ctrl *LaptopController) Get(c *gin.Context) {
	laptop, err := ctrl.laptops.GetListing(c.Param("id"))
	if err != nil {
		respondError(c, err, "Server error retrieving laptop")
		return
	}

	c.JSON(http.StatusOK, laptop)
}

// Create stores a new listing owned by the caller, with up to the configured
// number of uploaded images.
// POST /laptops (multipart)
func (ctrl *LaptopController) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
		})
		return
	}

	imageRefs, err := utils.SaveUploadedImages(c, ctrl.cfg.UploadDir, ctrl.cfg.MaxImages, ctrl.cfg.MaxImageSize)
	if err != nil {
		respondError(c, err, "Server error storing images")
		return
	}

	laptop, err := ctrl.laptops.CreateListing(laptopFormFromRequest(c), imageRefs, user)
	if err != nil {
		respondError(c, err, "Server error creating laptop listing")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Laptop listing created successfully",
		"laptop":  laptop,
	})
}

// Update applies the provided fields to a listing owned by the caller and
// appends any newly uploaded images.
// PUT /laptops/:id (multipart)
func (ctrl *LaptopController) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
		})
		return
	}

	imageRefs, err := utils.SaveUploadedImages(c, ctrl.cfg.UploadDir, ctrl.cfg.MaxImages, ctrl.cfg.MaxImageSize)
	if err != nil {
		respondError(c, err, "Server error storing images")
		return
	}

	laptop, err := ctrl.laptops.UpdateListing(c.Param("id"), user.ID, laptopFormFromRequest(c), imageRefs)
	if err != nil {
		respondError(c, err, "Server error updating laptop listing")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Laptop listing updated successfully",
		"laptop":  laptop,
	})
}

// Delete removes a listing owned by the caller along with its stored images
// DELETE /laptops/:id
func (ctrl *LaptopController) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
		})
		return
	}

	if err := ctrl.laptops.DeleteListing(c.Param("id"), user.ID); err != nil {
		respondError(c, err, "Server error deleting laptop listing")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Laptop listing deleted successfully",
	})
}

// MyListings returns all listings owned by the caller
// GET /laptops/user/my-listings
func (ctrl *LaptopController) MyListings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
		})
		return
	}

	laptops, err := ctrl.laptops.MyListings(user.ID)
	if err != nil {
		respondError(c, err, "Server error retrieving your listings")
		return
	}

	c.JSON(http.StatusOK, laptops)
}

// laptopFormFromRequest collects the listing form fields from a multipart
// request body.
func laptopFormFromRequest(c *gin.Context) dto.LaptopForm {
	return dto.LaptopForm{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Price:        c.PostForm("price"),
		Brand:        c.PostForm("brand"),
		Model:        c.PostForm("model"),
		Processor:    c.PostForm("processor"),
		RAM:          c.PostForm("ram"),
		Storage:      c.PostForm("storage"),
		ScreenSize:   c.PostForm("screenSize"),
		Condition:    c.PostForm("condition"),
		Year:         c.PostForm("year"),
		ContactEmail: c.PostForm("contactEmail"),
		ContactPhone: c.PostForm("contactPhone"),
		Status:       c.PostForm("status"),
	}
}
