package config

import (
	"log"
	"os"
	"time"

	"food-hub-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign session tokens, populated by Init
var JWTSecret []byte

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads the .env file (if any) and derives secrets from the environment
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Notice: .env file not found, using system environment variables")
	}
	JWTSecret = []byte(GetEnv("JWT_SECRET", "food_hub_super_secret_2024"))
}

// InitDB opens Postgres when DATABASE_URL is set, a local SQLite file
// otherwise, and migrates all models.
func InitDB() {
	var err error
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			NowFunc:        func() time.Time { return time.Now().UTC() },
			TranslateError: true,
		})
		if err == nil {
			if sqlDB, dbErr := DB.DB(); dbErr == nil {
				sqlDB.SetMaxOpenConns(20)
				sqlDB.SetMaxIdleConns(10)
				sqlDB.SetConnMaxLifetime(30 * time.Minute)
			}
		}
	} else {
		DB, err = gorm.Open(sqlite.Open(GetEnv("DB_PATH", "food_hub.db")), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
	}
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}
