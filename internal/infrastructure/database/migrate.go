package database

import (
	"fmt"

	"caresync-backend/internal/domain/entity"

	"gorm.io/gorm"
)

// Migrate creates the schema and verifies every table actually exists.
// Serving requests against a half-created schema is worse than refusing to
// start, so a missing table after migration is a fatal initialization error.
func Migrate(db *gorm.DB) error {
	models := []interface{}{
		&entity.User{},
		&entity.Patient{},
		&entity.Clinician{},
		&entity.Chat{},
		&entity.Query{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	for _, model := range models {
		if !db.Migrator().HasTable(model) {
			return fmt.Errorf("table for %T was not created", model)
		}
	}

	return nil
}
