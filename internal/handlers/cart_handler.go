package handlers

import (
	"errors"
	"net/http"

	"restaurant_orders/internal/cart"
	"restaurant_orders/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler is the HTTP facade over the per-session cart stores. It holds
// no cart logic of its own; every route resolves the session's store and
// invokes one store operation.
type CartHandler struct {
	carts           *cart.Manager
	menuService     services.MenuService
	checkoutService services.CheckoutService
}

func NewCartHandler(carts *cart.Manager, menuService services.MenuService, checkoutService services.CheckoutService) *CartHandler {
	return &CartHandler{
		carts:           carts,
		menuService:     menuService,
		checkoutService: checkoutService,
	}
}

// sessionID identifies the caller's cart slot. A missing header gets a
// fresh id, echoed back so the client can keep using it.
func sessionID(c *gin.Context) string {
	id := c.GetHeader("X-Session-ID")
	if id == "" {
		id = uuid.New().String()
	}
	c.Header("X-Session-ID", id)
	return id
}

func (h *CartHandler) cartState(store *cart.Store) gin.H {
	return gin.H{
		"items":         store.Items(),
		"item_count":    store.ItemCount(),
		"subtotal":      store.GetSubtotal(),
		"tax":           store.GetTax(),
		"total":         store.GetTotal(),
		"is_open":       store.IsOpen(),
		"last_modified": store.LastModified(),
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.carts.Get(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.cartState(store)})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		MenuItemID          uint   `json:"menu_item_id" binding:"required"`
		Quantity            *int   `json:"quantity"`
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	// Omitted quantity defaults to 1; an explicit non-positive quantity is
	// passed through so the store rejects it.
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.menuService.FetchMenuItemByID(req.MenuItemID)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load menu item"})
		return
	}
	if !item.IsAvailable {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Menu item is not available"})
		return
	}

	store := h.carts.Get(c.Request.Context(), sessionID(c))
	store.AddItem(*item, quantity, req.SpecialInstructions)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.cartState(store)})
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	store := h.carts.Get(c.Request.Context(), sessionID(c))
	store.UpdateQuantity(c.Param("line_id"), req.Quantity)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.cartState(store)})
}

func (h *CartHandler) UpdateInstructions(c *gin.Context) {
	var req struct {
		SpecialInstructions string `json:"special_instructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	store := h.carts.Get(c.Request.Context(), sessionID(c))
	store.UpdateSpecialInstructions(c.Param("line_id"), req.SpecialInstructions)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.cartState(store)})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	store := h.carts.Get(c.Request.Context(), sessionID(c))
	store.RemoveItem(c.Param("line_id"))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.cartState(store)})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.carts.Get(c.Request.Context(), sessionID(c))
	store.ClearCart()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": h.cartState(store)})
}

func (h *CartHandler) OpenCart(c *gin.Context) {
	store := h.carts.Get(c.Request.Context(), sessionID(c))
	store.OpenCart()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"is_open": store.IsOpen()}})
}

func (h *CartHandler) CloseCart(c *gin.Context) {
	store := h.carts.Get(c.Request.Context(), sessionID(c))
	store.CloseCart()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"is_open": store.IsOpen()}})
}

func (h *CartHandler) ToggleCart(c *gin.Context) {
	store := h.carts.Get(c.Request.Context(), sessionID(c))
	store.ToggleCart()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"is_open": store.IsOpen()}})
}

func (h *CartHandler) Checkout(c *gin.Context) {
	var req struct {
		CustomerName  string `json:"customer_name" binding:"required"`
		CustomerPhone string `json:"customer_phone"`
		OrderType     string `json:"order_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	input := services.PlaceOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		OrderType:     req.OrderType,
	}
	if user := currentUser(c); user != nil {
		input.UserID = &user.ID
	}

	order, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Cart is empty"})
		case errors.Is(err, services.ErrMissingCustomer), errors.Is(err, services.ErrInvalidOrderType):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
}

func (h *CartHandler) GetOrders(c *gin.Context) {
	orders, err := h.checkoutService.GetOrdersBySession(sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}
