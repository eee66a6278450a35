package models

import "time"

type Category struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	ImageURL      string    `json:"image_url"`
	ImagePublicID string    `json:"image_public_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Products      []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // One-to-many relationship
}
