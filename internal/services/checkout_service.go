package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"restaurant_orders/internal/cart"
	"restaurant_orders/internal/models"
	"restaurant_orders/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMissingCustomer  = errors.New("customer name is required")
	ErrInvalidOrderType = errors.New("invalid order type")
)

type PlaceOrderInput struct {
	CustomerName  string
	CustomerPhone string
	OrderType     string
	UserID        *uint
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*models.Order, error)
	GetOrder(id uint) (*models.Order, []models.OrderItem, error)
	GetOrdersBySession(sessionID string) ([]models.Order, error)
}

// checkoutService turns the session's cart into a persisted order. The cart
// is cleared only after the order and its items are stored.
type checkoutService struct {
	carts         *cart.Manager
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	taxRate       float64
}

func NewCheckoutService(carts *cart.Manager, orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, taxRate float64) CheckoutService {
	return &checkoutService{
		carts:         carts,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		taxRate:       taxRate,
	}
}

func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*models.Order, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, ErrMissingCustomer
	}

	orderType := input.OrderType
	if orderType == "" {
		orderType = string(models.OrderTypePickup)
	}
	switch models.OrderType(orderType) {
	case models.OrderTypePickup, models.OrderTypeDelivery, models.OrderTypeDineIn:
	default:
		return nil, ErrInvalidOrderType
	}

	store := s.carts.Get(ctx, sessionID)
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := store.GetSubtotal()
	tax := store.GetTax()
	total := store.GetTotal()

	order := &models.Order{
		OrderNumber:   generateOrderNumber(),
		SessionID:     sessionID,
		UserID:        input.UserID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		OrderType:     orderType,
		Status:        string(models.OrderPending),
		Subtotal:      subtotal,
		TaxRate:       s.taxRate,
		TaxAmount:     tax,
		TotalAmount:   total,
		PlacedAt:      time.Now(),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:             order.ID,
			MenuItemID:          item.MenuItemID,
			ItemName:            item.Name,
			Quantity:            item.Quantity,
			UnitPrice:           item.UnitPrice,
			TotalPrice:          cart.Subtotal([]cart.LineItem{item}),
			SpecialInstructions: item.SpecialInstructions,
		})
	}
	if err := s.orderItemRepo.CreateBatch(orderItems); err != nil {
		// Roll back the order row so no item-less order is left behind.
		if delErr := s.orderRepo.Delete(order.ID); delErr != nil {
			log.Printf("Warning: failed to roll back order %s: %v", order.OrderNumber, delErr)
		}
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	store.ClearCart()
	return order, nil
}

func (s *checkoutService) GetOrder(id uint) (*models.Order, []models.OrderItem, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.orderItemRepo.GetByOrderID(order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (s *checkoutService) GetOrdersBySession(sessionID string) ([]models.Order, error) {
	return s.orderRepo.GetBySessionID(sessionID)
}

func generateOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}
