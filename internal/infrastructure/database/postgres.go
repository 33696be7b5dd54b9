package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/motorline/dealerdesk-api/internal/config"
	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/pkg/permission"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Identity
		&entity.User{},
		&entity.MenuPermission{},

		// Master data
		&entity.Customer{},
		&entity.PaymentMode{},
		&entity.TypeOfPayment{},
		&entity.CollectionType{},
		&entity.VehicleModel{},

		// Ledgers
		&entity.PaymentCollection{},
		&entity.ServicePaymentCollection{},

		// Leads
		&entity.Enquiry{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds reference registries, role permission trees and the
// admin account on first boot. Every block is insert-if-missing so repeated
// boots leave existing rows alone.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Default payment modes
	for _, name := range []string{"Cash", "Card", "UPI", "Bank Transfer", "Cheque"} {
		var existing entity.PaymentMode
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.PaymentMode{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create payment mode %s: %v", name, err)
			}
		}
	}

	// Default collection types
	for _, name := range []string{"Booking Advance", "Full Payment", "Part Payment", "Accessories", "Insurance"} {
		var existing entity.CollectionType
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.CollectionType{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create collection type %s: %v", name, err)
			}
		}
	}

	// Default per-role menu trees
	seedRoleTree(db, "admin", permission.Tree{
		"dashboard": permission.Bool(true),
		"master": permission.Branch(permission.Tree{
			"customers":  permission.Bool(true),
			"references": permission.Bool(true),
			"users":      permission.Bool(true),
		}),
		"collections": permission.Branch(permission.Tree{
			"sales":   permission.Bool(true),
			"service": permission.Bool(true),
			"deleted": permission.Bool(true),
		}),
		"enquiries": permission.Bool(true),
		"reports":   permission.Bool(true),
	})
	seedRoleTree(db, "manager", permission.Tree{
		"dashboard": permission.Bool(true),
		"master": permission.Branch(permission.Tree{
			"customers":  permission.Bool(true),
			"references": permission.Bool(true),
			"users":      permission.Bool(false),
		}),
		"collections": permission.Branch(permission.Tree{
			"sales":   permission.Bool(true),
			"service": permission.Bool(true),
			"deleted": permission.Bool(true),
		}),
		"enquiries": permission.Bool(true),
		"reports":   permission.Bool(true),
	})
	seedRoleTree(db, "staff", permission.Tree{
		"dashboard": permission.Bool(true),
		"master": permission.Branch(permission.Tree{
			"customers":  permission.Bool(true),
			"references": permission.Bool(false),
			"users":      permission.Bool(false),
		}),
		"collections": permission.Branch(permission.Tree{
			"sales":   permission.Bool(true),
			"service": permission.Bool(true),
			"deleted": permission.Bool(false),
		}),
		"enquiries": permission.Bool(true),
		"reports":   permission.Bool(false),
	})

	// Create admin user if configured via environment variables
	adminUsername := viper.GetString("ADMIN_USERNAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminUsername != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", adminUsername).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Administrator"
				}
				adminUser := entity.User{
					Username: adminUsername,
					Password: string(hashedPassword),
					FullName: adminName,
					Role:     "admin",
					Active:   true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminUsername)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminUsername)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

func seedRoleTree(db *gorm.DB, role string, tree permission.Tree) {
	var existing entity.MenuPermission
	if err := db.Where("role = ?", role).First(&existing).Error; err == nil {
		return
	}
	payload, err := tree.Encode()
	if err != nil {
		log.Printf("Warning: failed to encode %s permission tree: %v", role, err)
		return
	}
	if err := db.Create(&entity.MenuPermission{Role: role, Permissions: payload}).Error; err != nil {
		log.Printf("Warning: failed to seed %s permissions: %v", role, err)
	}
}
