// Command migrate applies the schema once and exits. Useful when the api
// binary runs with automigrate disabled.
package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"user-address-service/internal/core/config"
	"user-address-service/internal/core/database"
	"user-address-service/internal/core/logger"
	"user-address-service/internal/domain"
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
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Address{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}
	log.Info("migration complete",
		zap.String("driver", cfg.DB.Driver),
		zap.Strings("tables", []string{"users", "addresses"}),
	)
}
