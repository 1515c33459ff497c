package repository

import (
	"restaurant_orders/internal/models"

	"gorm.io/gorm"
)

type MenuRepository interface {
	GetAllItems() ([]models.MenuItem, error)
	GetItemByID(id uint) (*models.MenuItem, error)
	GetItemsByCategory(categoryID uint) ([]models.MenuItem, error)
	GetAllCategories() ([]models.Category, error)
	CreateItem(item *models.MenuItem) error
	UpdateItem(item *models.MenuItem) error
	DeleteItem(id uint) error
	CreateCategory(category *models.Category) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetAllItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("is_available = ?", true).Order("category_id, name").Find(&items).Error
	return items, err
}

func (r *menuRepository) GetItemByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetItemsByCategory(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("category_id = ? AND is_available = ?", categoryID, true).Order("name").Find(&items).Error
	return items, err
}

func (r *menuRepository) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("display_order, name").Find(&categories).Error
	return categories, err
}

func (r *menuRepository) CreateItem(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) UpdateItem(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) DeleteItem(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}

func (r *menuRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}
