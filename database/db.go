package database

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/1mdc/discourse-follow/internal/models"
)

// ConnectDB initializes the connection to PostgreSQL using GORM.
func ConnectDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	sslmode := os.Getenv("DB_SSLMODE") // often "disable" for local dev

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// ProcessMigrations creates or updates the tables the feature owns.
func ProcessMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserCustomField{},
		&models.Topic{},
		&models.Post{},
	)
}
