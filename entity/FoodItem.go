package entity

// FoodItem is a fixed menu item. The strings are the canonical codes stored
// in the orders table and returned by the API.
type FoodItem string

const (
	VegManchurian     FoodItem = "Veg Manchurian"
	ChickenManchurian FoodItem = "Chicken Manchurian"
	VegFriedRice      FoodItem = "Veg Fried Rice"
	ChickenFriedRice  FoodItem = "Chicken Fried Rice"
)

func (f FoodItem) Valid() bool {
	switch f {
	case VegManchurian, ChickenManchurian, VegFriedRice, ChickenFriedRice:
		return true
	}
	return false
}

// VegFoodItems lists the vegetarian subset used by the veg earnings report.
func VegFoodItems() []FoodItem {
	return []FoodItem{VegManchurian, VegFriedRice}
}
