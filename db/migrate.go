package db

import (
	"fmt"
	"log"

	"github.com/meinhoongagan/cabinet-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Counter{},
		&models.Patient{},
		&models.Soin{},
		&models.Appointment{},
		&models.Charge{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
