package db

import (
	"errors"

	"sintnew/models"

	"gorm.io/gorm"
)

func GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetCategories lists every category, most recently updated first.
func GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := DB.Order("updated_at desc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func CreateCategory(category *models.Category) error {
	return DB.Create(category).Error
}

// UpdateCategory replaces all supplied fields on the row matching id. The
// Select forces zero values through, so an update always writes the full
// field set including the new image reference.
func UpdateCategory(id uint, category *models.Category) error {
	result := DB.Model(&models.Category{}).Where("id = ?", id).
		Select("name", "description", "image_url", "image_public_id").
		Updates(category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory removes the row. Referencing products are left alone; a
// dangling category reference on a product is allowed.
func DeleteCategory(id uint) error {
	result := DB.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
