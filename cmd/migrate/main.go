package main

import (
	"log"
	"os"

	"notes-app-be/internal/model"
	"notes-app-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = database.DriverPostgres
	}
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDB(database.GormConfig{Driver: driver, Connection: dsn})
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// 3. AutoMigrate All Models
	models := model.All()
	color.Cyan("Running AutoMigrate for %d table(s) on %s...", len(models), driver)

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			color.Red("Failed to migrate %T: %v", m, err)
			os.Exit(1)
		}
		color.Green("  ✓ %T", m)
	}

	color.Green("Migration complete.")
}
