package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/auth"
	"github.com/i-ankit-here/scrap-con-backend/internal/config"
	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) RegisterUser(req *dto.RegisterUserRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || len(req.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hash),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.generateTokenPair(user.ID, auth.RoleCustomer, dto.PrincipalResponse{
		ID: user.ID, Email: user.Email, Role: auth.RoleCustomer, Name: user.Name,
	})
}

func (s *AuthService) RegisterVendor(req *dto.RegisterVendorRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || len(req.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}
	if req.BusinessName == "" {
		return nil, errors.New("business name is required")
	}

	var existing models.Vendor
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	vendor := models.Vendor{
		ID:           uuid.New(),
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     string(hash),
		IsAvailable:  true,
	}

	if err := s.db.Create(&vendor).Error; err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return s.generateTokenPair(vendor.ID, auth.RoleVendor, dto.PrincipalResponse{
		ID: vendor.ID, Email: vendor.Email, Role: auth.RoleVendor,
		Name: vendor.BusinessName, IsVerified: vendor.IsVerified,
	})
}

// LoginUser authenticates a customer. The error is identical for unknown
// email and wrong password.
func (s *AuthService) LoginUser(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(user.ID, auth.RoleCustomer, dto.PrincipalResponse{
		ID: user.ID, Email: user.Email, Role: auth.RoleCustomer, Name: user.Name,
	})
}

// LoginVendor authenticates a vendor account the same way.
func (s *AuthService) LoginVendor(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var vendor models.Vendor
	if err := s.db.Where("email = ?", req.Email).First(&vendor).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(vendor.ID, auth.RoleVendor, dto.PrincipalResponse{
		ID: vendor.ID, Email: vendor.Email, Role: auth.RoleVendor,
		Name: vendor.BusinessName, IsVerified: vendor.IsVerified,
	})
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = ?", tokenHash, false).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	switch stored.Role {
	case auth.RoleCustomer:
		var user models.User
		if err := s.db.First(&user, "id = ?", stored.PrincipalID).Error; err != nil {
			return nil, ErrInvalidToken
		}
		return s.generateTokenPair(user.ID, auth.RoleCustomer, dto.PrincipalResponse{
			ID: user.ID, Email: user.Email, Role: auth.RoleCustomer, Name: user.Name,
		})
	case auth.RoleVendor:
		var vendor models.Vendor
		if err := s.db.First(&vendor, "id = ?", stored.PrincipalID).Error; err != nil {
			return nil, ErrInvalidToken
		}
		return s.generateTokenPair(vendor.ID, auth.RoleVendor, dto.PrincipalResponse{
			ID: vendor.ID, Email: vendor.Email, Role: auth.RoleVendor,
			Name: vendor.BusinessName, IsVerified: vendor.IsVerified,
		})
	}
	return nil, ErrInvalidToken
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (s *AuthService) generateTokenPair(principalID uuid.UUID, role string, principal dto.PrincipalResponse) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(principalID, role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(principalID, role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Principal:    principal,
	}, nil
}

func (s *AuthService) generateAccessToken(principalID uuid.UUID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  principalID.String(),
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(principalID uuid.UUID, role string) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:          uuid.New(),
		PrincipalID: principalID,
		Role:        role,
		TokenHash:   hashToken(rawToken),
		ExpiresAt:   time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
