package database

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/i-ankit-here/scrap-con-backend/internal/models"
	"gorm.io/gorm"
)

var defaultCategories = []models.ScrapCategory{
	{Name: "plastic", Description: "PET bottles, containers, wrapping film", Unit: "kg"},
	{Name: "paper", Description: "Newspaper, cardboard, office paper", Unit: "kg"},
	{Name: "metal", Description: "Aluminium, copper, steel, tin", Unit: "kg"},
	{Name: "glass", Description: "Bottles and jars", Unit: "kg"},
	{Name: "e-waste", Description: "Circuit boards, cables, small appliances", Unit: "piece"},
}

// SeedCategories inserts the default scrap categories, skipping names that
// already exist.
func SeedCategories(db *gorm.DB) error {
	for _, cat := range defaultCategories {
		var existing models.ScrapCategory
		if err := db.Where("name = ?", cat.Name).First(&existing).Error; err == nil {
			continue
		}
		cat.ID = uuid.New()
		cat.IsActive = true
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
		slog.Info("seeded scrap category", "name", cat.Name)
	}
	return nil
}
