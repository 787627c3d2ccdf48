package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestRunCreatesSchema(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Run(db))

	for _, table := range []string{"users", "posts", "tags", "post_tags", "schema_migrations"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var applied int64
	require.NoError(t, db.Table("schema_migrations").Count(&applied).Error)
	assert.EqualValues(t, len(All), applied)
}
