package entities

import (
	"github.com/google/uuid"
)

type Restaurant struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	OwnerID     string    `gorm:"index" json:"owner_id"` // user id, or owner email for admin-created rows
	OwnerName   string    `json:"owner_name"`
	OwnerEmail  string    `json:"owner_email"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"` // "active", "pending", "inactive"
	Description string    `gorm:"type:text" json:"description"`

	// No DB constraint: deleting a restaurant orphans its menu items
	// instead of failing or cascading.
	MenuItems []*MenuItem `gorm:"foreignKey:RestaurantID;constraint:-"`
	Timestamp
}
