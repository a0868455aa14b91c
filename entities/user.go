package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"` // "admin", "user"

	Profile *UserProfile `gorm:"foreignKey:UserID"`
	Timestamp
}

// UserProfile is the dashboard-facing profile record. It is created lazily on
// the first profile read for a user that has none yet.
type UserProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"` // "active", "inactive"
	RestaurantName string    `json:"restaurant_name"`
	PhoneNumber    string    `json:"phone_number"`
	Address        string    `json:"address"`
	Bio            string    `gorm:"type:text" json:"bio"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
