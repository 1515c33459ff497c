package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant_orders/internal/cart"
	"restaurant_orders/internal/models"
)

type fakeOrderRepo struct {
	orders []models.Order
	err    error
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = uint(len(f.orders) + 1)
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeOrderRepo) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	return nil, errors.New("not found")
}

func (f *fakeOrderRepo) GetBySessionID(sessionID string) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range f.orders {
		if o.SessionID == sessionID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) GetByDateRange(startDate, endDate time.Time) ([]models.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) Update(order *models.Order) error { return f.err }

func (f *fakeOrderRepo) Delete(id uint) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeOrderRepo) GetAll() ([]models.Order, error) { return f.orders, nil }

type fakeOrderItemRepo struct {
	items []models.OrderItem
	err   error
}

func (f *fakeOrderItemRepo) Create(orderItem *models.OrderItem) error {
	f.items = append(f.items, *orderItem)
	return f.err
}

func (f *fakeOrderItemRepo) CreateBatch(orderItems []models.OrderItem) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, orderItems...)
	return nil
}

func (f *fakeOrderItemRepo) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeOrderItemRepo) Update(orderItem *models.OrderItem) error { return f.err }

func (f *fakeOrderItemRepo) Delete(id uint) error { return f.err }

func seededCarts(t *testing.T, sessionID string) *cart.Manager {
	t.Helper()
	carts := cart.NewManager(cart.NewMemorySnapshotStorage(), "cart", cart.DefaultTaxRate)
	store := carts.Get(context.Background(), sessionID)
	store.AddItem(models.MenuItem{ID: 4, Name: "Classic Burger", Price: 8.99}, 3, "")
	return carts
}

func TestCheckoutPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart is rejected", func(t *testing.T) {
		carts := cart.NewManager(cart.NewMemorySnapshotStorage(), "cart", cart.DefaultTaxRate)
		svc := NewCheckoutService(carts, &fakeOrderRepo{}, &fakeOrderItemRepo{}, cart.DefaultTaxRate)

		_, err := svc.PlaceOrder(ctx, "s1", PlaceOrderInput{CustomerName: "Ada"})
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		svc := NewCheckoutService(seededCarts(t, "s1"), &fakeOrderRepo{}, &fakeOrderItemRepo{}, cart.DefaultTaxRate)
		_, err := svc.PlaceOrder(ctx, "s1", PlaceOrderInput{CustomerName: "   "})
		if !errors.Is(err, ErrMissingCustomer) {
			t.Fatalf("expected ErrMissingCustomer, got %v", err)
		}
	})

	t.Run("invalid order type", func(t *testing.T) {
		svc := NewCheckoutService(seededCarts(t, "s1"), &fakeOrderRepo{}, &fakeOrderItemRepo{}, cart.DefaultTaxRate)
		_, err := svc.PlaceOrder(ctx, "s1", PlaceOrderInput{CustomerName: "Ada", OrderType: "drone"})
		if !errors.Is(err, ErrInvalidOrderType) {
			t.Fatalf("expected ErrInvalidOrderType, got %v", err)
		}
	})

	t.Run("order carries cart totals and clears the cart", func(t *testing.T) {
		carts := seededCarts(t, "s1")
		orderRepo := &fakeOrderRepo{}
		itemRepo := &fakeOrderItemRepo{}
		svc := NewCheckoutService(carts, orderRepo, itemRepo, cart.DefaultTaxRate)

		order, err := svc.PlaceOrder(ctx, "s1", PlaceOrderInput{CustomerName: "Ada", CustomerPhone: "555-0100"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Subtotal != 26.97 || order.TaxAmount != 2.16 || order.TotalAmount != 29.13 {
			t.Fatalf("unexpected totals: %+v", order)
		}
		if order.Status != string(models.OrderPending) || order.OrderType != string(models.OrderTypePickup) {
			t.Fatalf("unexpected defaults: %+v", order)
		}
		if order.OrderNumber == "" {
			t.Fatal("expected an order number")
		}

		if len(itemRepo.items) != 1 {
			t.Fatalf("expected 1 order item, got %d", len(itemRepo.items))
		}
		item := itemRepo.items[0]
		if item.MenuItemID != 4 || item.Quantity != 3 || item.TotalPrice != 26.97 {
			t.Fatalf("unexpected order item: %+v", item)
		}

		if len(carts.Get(ctx, "s1").Items()) != 0 {
			t.Fatal("cart should be cleared after checkout")
		}
	})

	t.Run("order row rolled back when items fail", func(t *testing.T) {
		carts := seededCarts(t, "s1")
		orderRepo := &fakeOrderRepo{}
		svc := NewCheckoutService(carts, orderRepo, &fakeOrderItemRepo{err: errors.New("db down")}, cart.DefaultTaxRate)

		if _, err := svc.PlaceOrder(ctx, "s1", PlaceOrderInput{CustomerName: "Ada"}); err == nil {
			t.Fatal("expected error")
		}
		if len(orderRepo.orders) != 0 {
			t.Fatalf("expected no orphaned order, got %+v", orderRepo.orders)
		}
		if len(carts.Get(ctx, "s1").Items()) != 1 {
			t.Fatal("cart should be untouched when order items fail")
		}
	})

	t.Run("cart survives order creation failure", func(t *testing.T) {
		carts := seededCarts(t, "s1")
		svc := NewCheckoutService(carts, &fakeOrderRepo{err: errors.New("db down")}, &fakeOrderItemRepo{}, cart.DefaultTaxRate)

		if _, err := svc.PlaceOrder(ctx, "s1", PlaceOrderInput{CustomerName: "Ada"}); err == nil {
			t.Fatal("expected error")
		}
		if len(carts.Get(ctx, "s1").Items()) != 1 {
			t.Fatal("cart should be untouched when order creation fails")
		}
	})
}
