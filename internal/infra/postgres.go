package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

func InitPostgresql(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	if err := db.AutoMigrate(&db_models.User{}, &db_models.Recommendation{}); err != nil {
		log.Printf("Error migrating database schema: %v", err)
		return nil, err
	}

	return db, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
