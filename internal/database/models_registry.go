package database

import (
	"talkora/internal/models"

	"gorm.io/gorm"
)

// AllModels lists every model migrated at startup, in dependency order.
func AllModels() []any {
	return []any{
		&models.User{},
		&models.Post{},
		&models.PostTag{},
		&models.Vote{},
		&models.Comment{},
		&models.Tag{},
		&models.Search{},
		&models.Announcement{},
		&models.Payment{},
	}
}

// Migrate runs AutoMigrate for every registered model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
