package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("scrap category not found")

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// ListActive returns the active scrap categories, alphabetical.
func (s *CategoryService) ListActive() ([]models.ScrapCategory, error) {
	var categories []models.ScrapCategory
	err := s.db.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) Get(id uuid.UUID) (*models.ScrapCategory, error) {
	var category models.ScrapCategory
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
