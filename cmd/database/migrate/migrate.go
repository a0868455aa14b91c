package migration

import (
	"fmt"
	"log"

	"restoboard/entities"

	"gorm.io/gorm"
)

// Migrate sets up the schema explicitly at deploy time; the application never
// bootstraps tables or indexes lazily at request time.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserProfile{}); err != nil {
		log.Fatalf("Error migrating user profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Restaurant{}); err != nil {
		log.Fatalf("Error migrating restaurant database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Feedback{}); err != nil {
		log.Fatalf("Error migrating feedback database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
