package entities

import (
	"github.com/google/uuid"
)

type MenuItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID    uuid.UUID `gorm:"index" json:"restaurant_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Cost            float64   `json:"cost"`
	Description     string    `gorm:"type:text" json:"description"`
	Status          string    `json:"status"` // "active", "seasonal", "inactive"
	Ingredients     string    `gorm:"type:text" json:"ingredients"`
	Allergens       string    `json:"allergens"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
	Portion         string    `json:"portion"`
	ImageURL        string    `json:"image_url,omitempty"`

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:-"`
	Timestamp
}
