package config

import (
	"fmt"

	"github.com/UJJWAL-7777/Diet-Manager/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Food{},
		&models.MealPlan{},
		&models.Meal{},
		&models.MealItem{},
		&models.Progress{},
	)
}
