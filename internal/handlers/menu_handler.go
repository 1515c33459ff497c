package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant_orders/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func (h *MenuHandler) GetMenuItems(c *gin.Context) {
	items, err := h.menuService.FetchMenuItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "fallback": h.menuService.UsingFallback()})
}

func (h *MenuHandler) GetCategories(c *gin.Context) {
	categories, err := h.menuService.FetchCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories, "fallback": h.menuService.UsingFallback()})
}

func (h *MenuHandler) GetMenuItemByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid menu item id"})
		return
	}

	item, err := h.menuService.FetchMenuItemByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

func (h *MenuHandler) GetMenuItemsByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid category id"})
		return
	}

	items, err := h.menuService.FetchMenuItemsByCategory(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load menu items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "fallback": h.menuService.UsingFallback()})
}
