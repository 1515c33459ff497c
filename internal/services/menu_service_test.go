package services

import (
	"errors"
	"testing"

	"restaurant_orders/internal/models"

	"gorm.io/gorm"
)

type fakeMenuRepo struct {
	items      []models.MenuItem
	categories []models.Category
	err        error
}

func (f *fakeMenuRepo) GetAllItems() ([]models.MenuItem, error) {
	return f.items, f.err
}

func (f *fakeMenuRepo) GetItemByID(id uint) (*models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuRepo) GetItemsByCategory(categoryID uint) ([]models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var items []models.MenuItem
	for _, item := range f.items {
		if item.CategoryID == categoryID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeMenuRepo) GetAllCategories() ([]models.Category, error) {
	return f.categories, f.err
}

func (f *fakeMenuRepo) CreateItem(item *models.MenuItem) error         { return f.err }
func (f *fakeMenuRepo) UpdateItem(item *models.MenuItem) error         { return f.err }
func (f *fakeMenuRepo) DeleteItem(id uint) error                       { return f.err }
func (f *fakeMenuRepo) CreateCategory(category *models.Category) error { return f.err }

func TestMenuServiceFallback(t *testing.T) {
	t.Run("serves repository when healthy", func(t *testing.T) {
		repo := &fakeMenuRepo{items: []models.MenuItem{{ID: 42, Name: "Special", Price: 9.99}}}
		svc := NewMenuService(repo, false, false)

		items, err := svc.FetchMenuItems()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].ID != 42 {
			t.Fatalf("expected repository items, got %+v", items)
		}
		if svc.UsingFallback() {
			t.Fatal("fallback should not be active")
		}
	})

	t.Run("repository failure trips fallback", func(t *testing.T) {
		repo := &fakeMenuRepo{err: errors.New("connection refused")}
		svc := NewMenuService(repo, false, false)

		items, err := svc.FetchMenuItems()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) == 0 {
			t.Fatal("expected fallback dataset")
		}
		if !svc.UsingFallback() {
			t.Fatal("fallback should be active after repository failure")
		}
	})

	t.Run("successful read clears fallback", func(t *testing.T) {
		repo := &fakeMenuRepo{err: errors.New("connection refused")}
		svc := NewMenuService(repo, false, false)
		svc.FetchMenuItems()

		repo.err = nil
		repo.items = []models.MenuItem{{ID: 1, Name: "Back"}}
		if _, err := svc.FetchMenuItems(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc.UsingFallback() {
			t.Fatal("fallback should clear after recovery")
		}
	})

	t.Run("mock flag forces fallback", func(t *testing.T) {
		repo := &fakeMenuRepo{items: []models.MenuItem{{ID: 1, Name: "DB item"}}}
		svc := NewMenuService(repo, true, false)

		items, err := svc.FetchMenuItems()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, item := range items {
			if item.Name == "DB item" {
				t.Fatal("expected mock dataset, got repository data")
			}
		}
		if !svc.UsingFallback() {
			t.Fatal("fallback should report active in mock mode")
		}
	})

	t.Run("unknown item id", func(t *testing.T) {
		svc := NewMenuService(&fakeMenuRepo{}, false, false)
		if _, err := svc.FetchMenuItemByID(9999); !errors.Is(err, ErrMenuItemNotFound) {
			t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
		}
	})

	t.Run("fallback filters unavailable items by category", func(t *testing.T) {
		svc := NewMenuService(&fakeMenuRepo{}, true, false)
		items, err := svc.FetchMenuItemsByCategory(2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, item := range items {
			if !item.IsAvailable {
				t.Fatalf("unavailable item %q served from fallback", item.Name)
			}
			if item.CategoryID != 2 {
				t.Fatalf("item %q from wrong category %d", item.Name, item.CategoryID)
			}
		}
	})
}
