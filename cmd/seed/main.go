// Seed 工具：建表、对齐自增起点、灌入基础字典数据。
// 跑的时候连接池固定单连接（config 里 db.seeding=true）。
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-magmart-api/internal/core/config"
	"go-magmart-api/internal/core/database"
	"go-magmart-api/internal/core/logger"
	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/repo"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Seeding:            true,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	ctx := context.Background()

	statuses := repo.NewStatusCatalogRepo(db)
	for _, name := range []string{"pending", "confirmed", "shipped", "delivered", "cancelled"} {
		st, err := statuses.FindByName(ctx, name)
		if err != nil {
			log.Fatal("seed status lookup", zap.Error(err))
		}
		if st != nil {
			continue
		}
		if err := statuses.Create(ctx, &domain.StatusCatalog{Name: name}); err != nil {
			log.Fatal("seed status", zap.String("name", name), zap.Error(err))
		}
	}

	categories := repo.NewCategoryRepo(db)
	for _, name := range []string{"clothing", "shoes", "accessories"} {
		c, err := categories.FindByName(ctx, name)
		if err != nil {
			log.Fatal("seed category lookup", zap.Error(err))
		}
		if c != nil {
			continue
		}
		if err := categories.Create(ctx, &domain.Category{Name: name}); err != nil {
			log.Fatal("seed category", zap.String("name", name), zap.Error(err))
		}
	}

	log.Info("seed done")
}
