package services

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"restaurant_orders/internal/mockdata"
	"restaurant_orders/internal/models"
	"restaurant_orders/internal/repository"

	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuService interface {
	FetchMenuItems() ([]models.MenuItem, error)
	FetchCategories() ([]models.Category, error)
	FetchMenuItemByID(id uint) (*models.MenuItem, error)
	FetchMenuItemsByCategory(categoryID uint) ([]models.MenuItem, error)
	UsingFallback() bool
}

// menuService is a two-tier data source: the primary catalog repository,
// and the fixed fallback dataset. The fallback is selected either by the
// USE_MOCK_MENU flag or by a health signal tripped when the repository
// fails; the next successful read clears it.
type menuService struct {
	menuRepo repository.MenuRepository
	useMock  bool
	devMode  bool

	mu             sync.Mutex
	fallbackActive bool
}

func NewMenuService(menuRepo repository.MenuRepository, useMock, devMode bool) MenuService {
	return &menuService{menuRepo: menuRepo, useMock: useMock, devMode: devMode}
}

func (s *menuService) FetchMenuItems() ([]models.MenuItem, error) {
	if s.shouldUseMock() {
		return s.mockItems(), nil
	}
	items, err := s.menuRepo.GetAllItems()
	if err != nil {
		s.tripFallback(err)
		return s.mockItems(), nil
	}
	s.clearFallback()
	return items, nil
}

func (s *menuService) FetchCategories() ([]models.Category, error) {
	if s.shouldUseMock() {
		return s.mockCategories(), nil
	}
	categories, err := s.menuRepo.GetAllCategories()
	if err != nil {
		s.tripFallback(err)
		return s.mockCategories(), nil
	}
	s.clearFallback()
	return categories, nil
}

func (s *menuService) FetchMenuItemByID(id uint) (*models.MenuItem, error) {
	if s.shouldUseMock() {
		return s.mockItemByID(id)
	}
	item, err := s.menuRepo.GetItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		s.tripFallback(err)
		return s.mockItemByID(id)
	}
	s.clearFallback()
	return item, nil
}

func (s *menuService) FetchMenuItemsByCategory(categoryID uint) ([]models.MenuItem, error) {
	if s.shouldUseMock() {
		return s.mockItemsByCategory(categoryID), nil
	}
	items, err := s.menuRepo.GetItemsByCategory(categoryID)
	if err != nil {
		s.tripFallback(err)
		return s.mockItemsByCategory(categoryID), nil
	}
	s.clearFallback()
	return items, nil
}

func (s *menuService) UsingFallback() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.useMock || s.fallbackActive
}

func (s *menuService) shouldUseMock() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.useMock || s.fallbackActive
}

func (s *menuService) tripFallback(err error) {
	log.Printf("Warning: menu repository unavailable, serving fallback dataset: %v", err)
	s.mu.Lock()
	s.fallbackActive = true
	s.mu.Unlock()
}

func (s *menuService) clearFallback() {
	s.mu.Lock()
	s.fallbackActive = false
	s.mu.Unlock()
}

// simulateLatency mimics network delay on fallback reads in dev mode so the
// UI behaves close to production timing.
func (s *menuService) simulateLatency() {
	if s.devMode {
		time.Sleep(time.Duration(200+rand.Intn(100)) * time.Millisecond)
	}
}

func (s *menuService) mockItems() []models.MenuItem {
	s.simulateLatency()
	return mockdata.MenuItems()
}

func (s *menuService) mockCategories() []models.Category {
	s.simulateLatency()
	return mockdata.Categories()
}

func (s *menuService) mockItemByID(id uint) (*models.MenuItem, error) {
	s.simulateLatency()
	for _, item := range mockdata.MenuItems() {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, ErrMenuItemNotFound
}

func (s *menuService) mockItemsByCategory(categoryID uint) []models.MenuItem {
	s.simulateLatency()
	var items []models.MenuItem
	for _, item := range mockdata.MenuItems() {
		if item.CategoryID == categoryID && item.IsAvailable {
			items = append(items, item)
		}
	}
	return items
}
