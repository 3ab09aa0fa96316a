package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
)

// AnalyticsRepository runs the read-only aggregate queries. Every method is a
// single read against the current store snapshot; nothing here mutates state.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// CustomerOrderCount is one row of the top-customers ranking.
type CustomerOrderCount struct {
	Name        string `json:"name"`
	OrdersCount int    `json:"orders_count"`
}

// DailyAreaRevenue is one (calendar date, area) revenue row. Date is the
// ISO calendar date (YYYY-MM-DD) of the orders, not a timestamp.
type DailyAreaRevenue struct {
	Date        string      `json:"date"`
	Area        entity.Area `json:"area"`
	TotalAmount float64     `json:"total_amount"`
}

// ItemCount is one row of a restaurant's per-item order breakdown.
type ItemCount struct {
	ItemName entity.FoodItem `json:"item_name"`
	Count    int             `json:"count"`
}

// successfulEarnings joins orders to their payment and restaurant, keeping
// only successful payments in the given area.
func (r *AnalyticsRepository) successfulEarnings(area entity.Area) *gorm.DB {
	return r.db.Model(&entity.Order{}).
		Joins("JOIN payments ON payments.transaction_id = orders.transaction_id").
		Joins("JOIN restaurants ON restaurants.restaurant_id = orders.restaurant_id").
		Where("payments.status = ?", entity.PaymentPass).
		Where("restaurants.area = ?", area)
}

// SumEarningsBetween totals successful-payment amounts for orders created in
// [start, end] in the given area. Returns 0 when nothing matches.
func (r *AnalyticsRepository) SumEarningsBetween(area entity.Area, start, end time.Time) (float64, error) {
	var total float64
	err := r.successfulEarnings(area).
		Where("orders.created_at >= ? AND orders.created_at <= ?", start, end).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&total).Error
	return total, err
}

// SumEarningsForItems totals successful-payment amounts for orders of the
// given items in the given area, with no time filter.
func (r *AnalyticsRepository) SumEarningsForItems(area entity.Area, items []entity.FoodItem) (float64, error) {
	var total float64
	err := r.successfulEarnings(area).
		Where("orders.item_name IN ?", items).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&total).Error
	return total, err
}

// TopCustomersByOrders ranks customers by order count descending. Ties break
// on customer id ascending so identical data always ranks identically.
func (r *AnalyticsRepository) TopCustomersByOrders(limit int) ([]CustomerOrderCount, error) {
	out := make([]CustomerOrderCount, 0, limit)
	err := r.db.Model(&entity.Customer{}).
		Select("customers.name AS name, COUNT(orders.order_id) AS orders_count").
		Joins("JOIN orders ON orders.customer_id = customers.id").
		Group("customers.id").
		Order("orders_count DESC, customers.id ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// DailyRevenueSince groups successful-payment order amounts by (calendar
// date, area) for orders created at or after start. Only pairs with at
// least one matching order appear; no zero rows are synthesized.
func (r *AnalyticsRepository) DailyRevenueSince(start time.Time) ([]DailyAreaRevenue, error) {
	var out []DailyAreaRevenue
	err := r.db.Model(&entity.Order{}).
		Joins("JOIN payments ON payments.transaction_id = orders.transaction_id").
		Joins("JOIN restaurants ON restaurants.restaurant_id = orders.restaurant_id").
		Where("payments.status = ?", entity.PaymentPass).
		Where("orders.created_at >= ?", start).
		Select("DATE(orders.created_at) AS date, restaurants.area AS area, SUM(payments.amount) AS total_amount").
		Group("DATE(orders.created_at), restaurants.area").
		Order("date ASC, area ASC").
		Scan(&out).Error
	return out, err
}

// ItemCountsForRestaurant counts a restaurant's orders per item. Payment
// status is deliberately ignored: this report tracks order volume, not money.
func (r *AnalyticsRepository) ItemCountsForRestaurant(restaurantID uint) ([]ItemCount, error) {
	var out []ItemCount
	err := r.db.Model(&entity.Order{}).
		Select("item_name, COUNT(order_id) AS count").
		Where("restaurant_id = ?", restaurantID).
		Group("item_name").
		Order("item_name ASC").
		Scan(&out).Error
	return out, err
}
