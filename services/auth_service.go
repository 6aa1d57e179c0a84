package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/easylaptop/server/config"
	"github.com/easylaptop/server/dto"
	"github.com/easylaptop/server/models"
	"github.com/easylaptop/server/repositories"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login, and token operations
type AuthService struct {
	cfg   *config.Config
	users *repositories.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		cfg:   cfg,
		users: repositories.NewUserRepository(),
	}
}

// Register creates a new user account and returns it with a signed token
func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: please provide name, email, and password", models.ErrInvalidInput)
	}

	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeBoth
	}
	if !models.ValidUserType(userType) {
		return nil, "", fmt.Errorf("%w: user type must be seller, customer, or both", models.ErrInvalidInput)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Check if email already exists
	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, "", models.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	// Hash password. This is the only place a password value enters the
	// system, so hashing happens exactly once per value.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashedPassword),
		Phone:    strings.TrimSpace(req.Phone),
		College:  strings.TrimSpace(req.College),
		UserType: userType,
		Role:     models.RoleStudent,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Login authenticates a user and returns it with a signed token
func (s *AuthService) Login(req dto.LoginRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("%w: please provide email and password", models.ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, "", models.ErrUnauthorized
	}

	// bcrypt comparison is constant-effort against the stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", models.ErrUnauthorized
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the mutable profile fields. Empty values leave the
// existing field unchanged; email and role are not reachable from here.
func (s *AuthService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.UserType != "" && !models.ValidUserType(req.UserType) {
		return nil, fmt.Errorf("%w: user type must be seller, customer, or both", models.ErrInvalidInput)
	}

	if req.Name != "" {
		user.Name = strings.TrimSpace(req.Name)
	}
	if req.Phone != "" {
		user.Phone = strings.TrimSpace(req.Phone)
	}
	if req.College != "" {
		user.College = strings.TrimSpace(req.College)
	}
	if req.UserType != "" {
		user.UserType = req.UserType
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GenerateToken generates a new signed JWT for a user
func (s *AuthService) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := dto.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken validates a JWT and returns its claims. Malformed, badly
// signed, and expired tokens all come back as ErrUnauthorized; verification
// failure is an ordinary outcome, never a panic.
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrUnauthorized
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || claims.UserID == "" {
		return nil, models.ErrUnauthorized
	}

	return claims, nil
}
