package db

import (
	"fmt"
	"log"

	"github.com/meinhoongagan/philosophy-hub/models"
)

// Migrate connects and brings the schema up to date.
func Migrate() {
	Init()

	err := DB.AutoMigrate(
		&models.User{},
		&models.Otp{},
		&models.Tag{},
		&models.Content{},
		&models.ContentComment{},
		&models.Doubt{},
		&models.Response{},
		&models.Discussion{},
		&models.Comment{},
		&models.Seminar{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
