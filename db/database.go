package db

import (
	"fmt"
	"log"

	"github.com/hallopetra/formbuilder-go/config"
	"github.com/hallopetra/formbuilder-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE field_type AS ENUM ('TEXT', 'EMAIL', 'NUMBER', 'DATE', 'TEXTAREA', 'SELECT', 'RADIO', 'CHECKBOX'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.Form{},
		&models.FormField{},
		&models.FormSubmission{},
	)
}

// InitWithGormDB swaps in an externally constructed connection (tests) and
// provisions the schema on it.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
	createEnums()
	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}
}
