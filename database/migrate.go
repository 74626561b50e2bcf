package database

import (
	"gorm.io/gorm"

	"github.com/antlers07/kitchen-chatbot/models"
)

// Migrate creates the Orders and OrderedItems tables when they do not exist
// yet. The schema is owned by the database team; this is a dev and test
// convenience only.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Order{},
		&models.OrderedItem{},
	)
}
