package mockdata

import "restaurant_orders/internal/models"

// Fixed fallback dataset served when the catalog database is unavailable
// or when USE_MOCK_MENU is set.

func Categories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Appetizers", Description: "Small plates to start", DisplayOrder: 1},
		{ID: 2, Name: "Mains", Description: "Entrees and house specials", DisplayOrder: 2},
		{ID: 3, Name: "Desserts", Description: "Sweet endings", DisplayOrder: 3},
		{ID: 4, Name: "Drinks", Description: "Beverages", DisplayOrder: 4},
	}
}

func MenuItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, CategoryID: 1, Name: "House Salad", Description: "Mixed greens with vinaigrette", Price: 4.99, Ingredients: "romaine, cherry tomato, cucumber, red onion, vinaigrette", IsAvailable: true},
		{ID: 2, CategoryID: 1, Name: "Garlic Bread", Description: "Toasted baguette with garlic butter", Price: 3.49, Ingredients: "baguette, garlic, butter, parsley", IsAvailable: true},
		{ID: 3, CategoryID: 1, Name: "Soup of the Day", Description: "Ask your server", Price: 5.49, Ingredients: "varies daily", IsAvailable: true},
		{ID: 4, CategoryID: 2, Name: "Classic Burger", Description: "Beef patty with lettuce and tomato", Price: 8.99, Ingredients: "beef, brioche bun, lettuce, tomato, pickle, house sauce", IsAvailable: true},
		{ID: 5, CategoryID: 2, Name: "Grilled Salmon", Description: "Atlantic salmon with seasonal vegetables", Price: 12.99, Ingredients: "salmon, lemon, seasonal vegetables, olive oil", IsAvailable: true},
		{ID: 6, CategoryID: 2, Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: 10.49, Ingredients: "pizza dough, tomato, mozzarella, basil", IsAvailable: true},
		{ID: 7, CategoryID: 2, Name: "Truffle Pasta", Description: "Seasonal special", Price: 14.99, Ingredients: "tagliatelle, truffle, cream, parmesan", IsAvailable: false},
		{ID: 8, CategoryID: 3, Name: "Chocolate Lava Cake", Description: "Warm cake with molten center", Price: 6.99, Ingredients: "chocolate, flour, egg, butter", IsAvailable: true},
		{ID: 9, CategoryID: 3, Name: "Tiramisu", Description: "Classic espresso-soaked dessert", Price: 6.49, Ingredients: "mascarpone, espresso, ladyfingers, cocoa", IsAvailable: true},
		{ID: 10, CategoryID: 4, Name: "Fresh Lemonade", Description: "Squeezed to order", Price: 2.99, Ingredients: "lemon, sugar, water, mint", IsAvailable: true},
		{ID: 11, CategoryID: 4, Name: "Iced Tea", Description: "House-brewed black tea", Price: 2.49, Ingredients: "black tea, ice, lemon", IsAvailable: true},
	}
}
