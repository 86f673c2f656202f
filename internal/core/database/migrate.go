package database

import (
	"fmt"

	"gorm.io/gorm"

	"go-magmart-api/internal/domain"
)

// 身份键从 1000 起步
const identityStart = 1000

func models() []any {
	return []any{
		&domain.User{},
		&domain.Address{},
		&domain.Category{},
		&domain.Product{},
		&domain.StatusCatalog{},
		&domain.Order{},
		&domain.OrderStatus{},
		&domain.OrderItem{},
		&domain.RefreshToken{},
	}
}

// AutoMigrate 建表并把各表自增起点对齐到 identityStart。
func AutoMigrate(db *gorm.DB) error {
	ms := models()
	if err := db.AutoMigrate(ms...); err != nil {
		return err
	}
	for _, m := range ms {
		if err := alignIdentity(db, m); err != nil {
			return err
		}
	}
	return nil
}

func alignIdentity(db *gorm.DB, model any) error {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return err
	}
	table := stmt.Schema.Table

	switch db.Dialector.Name() {
	case "postgres":
		seq := fmt.Sprintf("%s_id_seq", table)
		return db.Exec(fmt.Sprintf(
			"SELECT setval('%s', GREATEST((SELECT COALESCE(MAX(id), 0) FROM %q), %d))",
			seq, table, identityStart-1,
		)).Error
	case "mysql":
		return db.Exec(fmt.Sprintf("ALTER TABLE `%s` AUTO_INCREMENT = %d", table, identityStart)).Error
	case "sqlite":
		// sqlite_sequence 行在首次插入前不存在
		return db.Exec(
			"INSERT INTO sqlite_sequence (name, seq) SELECT ?, ? WHERE NOT EXISTS (SELECT 1 FROM sqlite_sequence WHERE name = ?)",
			table, identityStart-1, table,
		).Error
	}
	return nil
}
