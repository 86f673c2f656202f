package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-magmart-api/internal/domain"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestAutoMigrate_CreatesAllTables(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{
		"users", "address", "category", "products",
		"status_catalog", "orders", "order_status", "order_product_item",
		"refresh_tokens",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestAutoMigrate_FirstIDsStartAtIdentityBase(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, AutoMigrate(db))

	u := domain.User{FirstName: "A", LastName: "B", Email: "a@example.com", Password: "x", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)
	assert.EqualValues(t, identityStart, u.ID)

	c := domain.Category{Name: "clothing"}
	require.NoError(t, db.Create(&c).Error)
	assert.EqualValues(t, identityStart, c.ID)
}

// 重跑迁移不能把已经长过 1000 的序列拽回去
func TestAutoMigrate_IsIdempotent(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, AutoMigrate(db))

	u := domain.User{FirstName: "A", LastName: "B", Email: "a@example.com", Password: "x", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)

	require.NoError(t, AutoMigrate(db))

	u2 := domain.User{FirstName: "C", LastName: "D", Email: "c@example.com", Password: "x", Role: "customer"}
	require.NoError(t, db.Create(&u2).Error)
	assert.EqualValues(t, identityStart+1, u2.ID)
}
