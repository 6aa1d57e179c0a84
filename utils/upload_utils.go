package utils

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/easylaptop/server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadURLPrefix is the public path prefix under which stored images are
// served.
const UploadURLPrefix = "/uploads"

// SaveUploadedImages stores the "images" files from a multipart request into
// uploadDir and returns their public references. An oversized file, a
// non-image file, or more than maxCount files fails the whole request;
// nothing is truncated. A request without images is fine and returns nil.
func SaveUploadedImages(c *gin.Context, uploadDir string, maxCount int, maxSize int64) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Not a multipart request, or no body: no images to store
		return nil, nil
	}

	files := form.File["images"]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > maxCount {
		return nil, fmt.Errorf("%w: at most %d images are allowed", models.ErrInvalidInput, maxCount)
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size > maxSize {
			return nil, fmt.Errorf("%w: image %s exceeds the %d MB limit", models.ErrInvalidInput, file.Filename, maxSize/(1024*1024))
		}
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			return nil, fmt.Errorf("%w: only image files are allowed", models.ErrInvalidInput)
		}

		// Unique filename avoids collisions between uploads
		name := "laptop-" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
			return nil, err
		}
		refs = append(refs, UploadURLPrefix+"/"+name)
	}

	return refs, nil
}

// RemoveImages deletes the stored files behind the given references. A file
// that is already gone is not an error; other failures are logged and
// swallowed so listing deletion never fails on cleanup.
func RemoveImages(uploadDir string, refs []string) {
	for _, ref := range refs {
		name := path.Base(ref)
		if name == "." || name == "/" {
			continue
		}
		if err := os.Remove(filepath.Join(uploadDir, name)); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: failed to remove image %s: %v", name, err)
		}
	}
}
