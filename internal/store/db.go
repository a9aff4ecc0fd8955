package store

import (
	"fmt"
	"log"
	"time"

	"salestrack/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the MySQL database, waiting for it to come up, and syncs the
// schema. TranslateError is on so constraint violations surface as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated regardless of driver.
func Connect(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after 5 attempts: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate syncs the schema, including the named unique indexes and check
// constraints the data model relies on.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.RetailPartner{},
		&models.User{},
		&models.Product{},
		&models.Inventory{},
		&models.DailySalesReport{},
		&models.DailySalesItem{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Store is the data access layer. All reads and writes go through it.
type Store struct {
	db *gorm.DB
}

// New wraps an open gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
