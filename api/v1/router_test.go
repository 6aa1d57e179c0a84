package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/easylaptop/server/config"
	"github.com/easylaptop/server/database"
	"github.com/easylaptop/server/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Laptop{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	database.DB = db

	cfg := &config.Config{
		JWTSecret:    "test-secret-key",
		TokenTTL:     7 * 24 * time.Hour,
		BcryptCost:   bcrypt.MinCost,
		UploadDir:    t.TempDir(),
		MaxImages:    5,
		MaxImageSize: 5 * 1024 * 1024,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group(""), cfg)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, router *gin.Engine, method, path, token string, fields map[string]string, images map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	for filename, data := range images {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="images"; filename="`+filename+`"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func registerUser(t *testing.T, router *gin.Engine, name, email string) (token, userID string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
		"college":  "Tech College",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%s)", email, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	user := body["user"].(map[string]any)
	return body["token"].(string), user["id"].(string)
}

func TestRegisterLoginMe(t *testing.T) {
	router := setupServer(t)

	token, _ := registerUser(t, router, "Alice", "alice@example.com")

	t.Run("duplicate email rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
			"name": "Clone", "email": "Alice@Example.com", "password": "password123",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
			"email": "alice@example.com", "password": "nope",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("login success", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/auth/login", "", gin.H{
			"email": "alice@example.com", "password": "password123",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if strings.Contains(w.Body.String(), "password") {
			t.Fatalf("response leaks password material: %s", w.Body.String())
		}
	})

	t.Run("me", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/auth/me", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["email"] != "alice@example.com" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, leaked := body["password"]; leaked {
			t.Fatal("password field present in /auth/me response")
		}
	})

	t.Run("me without token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/auth/me", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestLaptopLifecycle(t *testing.T) {
	router := setupServer(t)

	ownerToken, ownerID := registerUser(t, router, "Owner", "owner@example.com")
	intruderToken, _ := registerUser(t, router, "Intruder", "intruder@example.com")

	fields := map[string]string{
		"title":       "Dell Inspiron 15",
		"description": "Good student laptop",
		"price":       "350",
		"brand":       "Dell",
		"condition":   "Good",
		"year":        "2021",
	}

	t.Run("create requires auth", func(t *testing.T) {
		w := doMultipart(t, router, http.MethodPost, "/laptops", "", fields, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("create without title fails", func(t *testing.T) {
		partial := map[string]string{"description": "x", "price": "1", "brand": "Dell"}
		w := doMultipart(t, router, http.MethodPost, "/laptops", ownerToken, partial, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
		}
	})

	var laptopID string
	t.Run("create", func(t *testing.T) {
		w := doMultipart(t, router, http.MethodPost, "/laptops", ownerToken, fields, map[string][]byte{
			"front.jpg": []byte("jpeg-bytes"),
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		laptop := body["laptop"].(map[string]any)
		laptopID = laptop["id"].(string)

		seller := laptop["seller"].(map[string]any)
		if seller["name"] != "Owner" {
			t.Fatalf("seller not populated: %v", seller)
		}
		if _, leaked := seller["password"]; leaked {
			t.Fatal("password hash leaked in listing response")
		}
		if images := laptop["images"].([]any); len(images) != 1 {
			t.Fatalf("expected 1 image ref, got %v", images)
		}
	})

	t.Run("browse with filters", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/laptops?minPrice=100&maxPrice=500&brand=dell", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var results []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
	})

	t.Run("college filter with no peers is empty", func(t *testing.T) {
		// Intruder shares the college, so scope to a fresh caller
		lonerToken, _ := registerUserWithCollege(t, router, "Loner", "loner@example.com", "Nowhere U")
		w := doJSON(t, router, http.MethodGet, "/laptops?collegeFilter=myCollege", lonerToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var results []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("expected empty array, got %d results", len(results))
		}
	})

	t.Run("get by id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/laptops/"+laptopID, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-owner update forbidden", func(t *testing.T) {
		w := doMultipart(t, router, http.MethodPut, "/laptops/"+laptopID, intruderToken, map[string]string{"price": "1"}, nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("owner update", func(t *testing.T) {
		w := doMultipart(t, router, http.MethodPut, "/laptops/"+laptopID, ownerToken, map[string]string{"price": "300", "status": "sold"}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		laptop := decodeBody(t, w)["laptop"].(map[string]any)
		if laptop["price"].(float64) != 300 {
			t.Fatalf("price not updated: %v", laptop["price"])
		}
		if laptop["sellerId"] != ownerID {
			t.Fatalf("seller changed: %v", laptop["sellerId"])
		}
	})

	t.Run("my listings", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/laptops/user/my-listings", ownerToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var results []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 owned listing, got %d", len(results))
		}
	})

	t.Run("non-owner delete forbidden", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/laptops/"+laptopID, intruderToken, nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("owner delete", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/laptops/"+laptopID, ownerToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := doJSON(t, router, http.MethodGet, "/laptops/"+laptopID, "", nil); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", w.Code)
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/laptops/not-a-real-id", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func registerUserWithCollege(t *testing.T, router *gin.Engine, name, email, college string) (token, userID string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
		"college":  college,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%s)", email, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	user := body["user"].(map[string]any)
	return body["token"].(string), user["id"].(string)
}

func TestUpdateProfile(t *testing.T) {
	router := setupServer(t)
	token, _ := registerUser(t, router, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPut, "/users/profile", token, gin.H{
		"name":    "Alice Renamed",
		"college": "New College",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["name"] != "Alice Renamed" || body["college"] != "New College" {
		t.Fatalf("profile not updated: %v", body)
	}
	if body["email"] != "alice@example.com" {
		t.Fatalf("email must be immutable, got %v", body["email"])
	}

	t.Run("requires auth", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/users/profile", "", gin.H{"name": "x"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
