// Package migrations applies versioned, forward-only schema migrations.
// Applied ids are recorded in schema_migrations; startup never drops data.
package migrations

import (
	"fmt"
	"log"
	"time"

	"blogly/internal/models"

	"gorm.io/gorm"
)

// Migration is one forward schema step, applied at most once.
type Migration struct {
	ID      string
	Migrate func(tx *gorm.DB) error
}

type schemaMigration struct {
	ID        string `gorm:"primaryKey;size:255"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string { return "schema_migrations" }

// All lists every migration in application order. Append only; never edit
// or reorder a shipped entry.
var All = []Migration{
	{
		ID: "001_initial_schema",
		Migrate: func(tx *gorm.DB) error {
			// Creates users, posts, tags and the post_tags join table with
			// its composite (post_id, tag_id) primary key.
			return tx.AutoMigrate(&models.User{}, &models.Post{}, &models.Tag{})
		},
	},
}

// Run applies every pending migration, each in its own transaction.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	for _, m := range All {
		var applied int64
		err := db.Model(&schemaMigration{}).Where("id = ?", m.ID).Count(&applied).Error
		if err != nil {
			return fmt.Errorf("check migration %s: %w", m.ID, err)
		}
		if applied > 0 {
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := m.Migrate(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{ID: m.ID, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", m.ID, err)
		}
		log.Printf("Applied migration %s", m.ID)
	}
	return nil
}
