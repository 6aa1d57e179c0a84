package v1

import (
	"errors"
	"net/http"

	"github.com/easylaptop/server/models"
	"github.com/gin-gonic/gin"
)

// respondError translates a service error into a JSON error body. Unknown
// errors become a 500 with the fallback message; internals never leak to the
// caller.
func respondError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, models.ErrDuplicateEmail):
		status = http.StatusBadRequest
		message = "User already exists with this email"
	case errors.Is(err, models.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "Invalid email or password"
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
		message = "Laptop not found"
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}
