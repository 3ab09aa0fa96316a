package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		panic(fmt.Sprintf("unsupported DB_DRIVER: %s", cfg.DBDriver))
	}

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Customer{},
		&entity.Restaurant{},
		&entity.Payment{},
		&entity.Order{},
	)
}
