package db

import (
	"errors"

	"sintnew/models"

	"gorm.io/gorm"
)

func GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := DB.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetProducts lists products, most recently updated first, each joined to
// its category so listings can show the category name. A nil categoryID
// returns every product.
func GetProducts(categoryID *uint) ([]models.Product, error) {
	query := DB.Preload("Category").Order("updated_at desc")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func CreateProduct(product *models.Product) error {
	return DB.Create(product).Error
}

// UpdateProduct replaces all supplied fields on the row matching id,
// including zero values and the category reference.
func UpdateProduct(id uint, product *models.Product) error {
	result := DB.Model(&models.Product{}).Where("id = ?", id).
		Select("name", "sku", "description", "status", "price", "image_url", "image_public_id", "category_id").
		Updates(product)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteProduct(id uint) error {
	result := DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
