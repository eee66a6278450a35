package models

import "time"

// Product statuses. Draft products are hidden from the storefront.
const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
)

type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name" validate:"required"`
	SKU           string    `json:"sku" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	Status        string    `json:"status" validate:"required,oneof=Draft Published"`
	Price         int64     `json:"price" validate:"min=0"` // minor currency units
	ImageURL      string    `json:"image_url"`
	ImagePublicID string    `json:"image_public_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	CategoryID    *uint     `json:"category_id"`                                     // Foreign key to Category, nullable
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // Belongs to one Category
}
