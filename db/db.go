package db

import (
	"fmt"
	"log"
	"os"

	"trackventory/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

// Migrate creates the schema in FK dependency order: parents first, then
// the tables that reference them.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Category{},
		&models.Item{},
		&models.BorrowStatus{},
		&models.RequestStatus{},
		&models.ItemBorrowed{},
		&models.PurchaseInvoice{},
		&models.PurchaseRequest{},
	)
}
