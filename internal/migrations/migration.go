package migrations

import (
	"log"

	"restaurant_orders/internal/mockdata"
	"restaurant_orders/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations runs all database migrations and seeds default data
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	if err != nil {
		return err
	}

	if err := seedMenu(db); err != nil {
		return err
	}
	return seedAdminUser(db)
}

// seedMenu loads the fallback dataset into an empty catalog so a fresh
// install has something to serve.
func seedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding menu catalog...")
	for _, category := range mockdata.Categories() {
		category.ID = 0
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}
	for _, item := range mockdata.MenuItems() {
		item.ID = 0
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", string(models.RoleAdmin)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	log.Println("Creating default admin user...")
	admin := &models.User{
		Username:     "admin",
		Email:        "admin@localhost",
		PasswordHash: string(hashedPassword),
		Role:         string(models.RoleAdmin),
		IsActive:     true,
	}
	return db.Create(admin).Error
}
