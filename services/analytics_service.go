package services

import (
	"errors"
	"time"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/utils"
)

// ErrRestaurantNotFound distinguishes a missing restaurant from a restaurant
// with an empty report.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// The store is single-currency; every monetary result carries this code.
const defaultCurrency = "INR"

const topCustomerLimit = 3

// EarningsResult is a monetary total paired with its currency.
type EarningsResult struct {
	TotalAmount float64 `json:"total_amount"`
	Currency    string  `json:"currency"`
}

// DailyRevenue is one (date, area) revenue row with its currency.
type DailyRevenue struct {
	Date        string      `json:"date"`
	Area        entity.Area `json:"area"`
	TotalAmount float64     `json:"total_amount"`
	Currency    string      `json:"currency"`
}

// AnalyticsService computes the five aggregate reports. Each call is a
// stateless read over the store's current snapshot; a report with no matching
// rows is a zero/empty success, never an error.
type AnalyticsService struct {
	analytics   *repository.AnalyticsRepository
	restaurants *repository.RestaurantRepository

	// as-of clock, overridable in tests
	now func() time.Time
}

func NewAnalyticsService(analytics *repository.AnalyticsRepository, restaurants *repository.RestaurantRepository) *AnalyticsService {
	return &AnalyticsService{
		analytics:   analytics,
		restaurants: restaurants,
		now:         time.Now,
	}
}

// EarningsLastMonth sums successful-payment order amounts for the given area
// over the previous calendar month (UTC), inclusive of both endpoints.
func (s *AnalyticsService) EarningsLastMonth(area entity.Area) (*EarningsResult, error) {
	start, end := utils.PreviousMonthRange(s.now())
	total, err := s.analytics.SumEarningsBetween(area, start, end)
	if err != nil {
		return nil, err
	}
	return &EarningsResult{TotalAmount: total, Currency: defaultCurrency}, nil
}

// VegEarnings sums successful-payment order amounts for vegetarian items in
// the given area, across all time.
func (s *AnalyticsService) VegEarnings(area entity.Area) (*EarningsResult, error) {
	total, err := s.analytics.SumEarningsForItems(area, entity.VegFoodItems())
	if err != nil {
		return nil, err
	}
	return &EarningsResult{TotalAmount: total, Currency: defaultCurrency}, nil
}

// TopCustomers returns up to three customers ranked by order count.
func (s *AnalyticsService) TopCustomers() ([]repository.CustomerOrderCount, error) {
	return s.analytics.TopCustomersByOrders(topCustomerLimit)
}

// DailyRevenue reports per-area revenue for the trailing seven calendar days
// ending today (UTC). Only (date, area) pairs with at least one
// successful-payment order appear.
func (s *AnalyticsService) DailyRevenue() ([]DailyRevenue, error) {
	start := utils.TrailingDaysStart(s.now(), 7)
	rows, err := s.analytics.DailyRevenueSince(start)
	if err != nil {
		return nil, err
	}
	out := make([]DailyRevenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, DailyRevenue{
			Date:        row.Date,
			Area:        row.Area,
			TotalAmount: row.TotalAmount,
			Currency:    defaultCurrency,
		})
	}
	return out, nil
}

// RestaurantItemsSummary counts a restaurant's orders per item, regardless of
// payment status. Returns ErrRestaurantNotFound for an unknown restaurant,
// which is distinct from a known restaurant with no orders yet.
func (s *AnalyticsService) RestaurantItemsSummary(restaurantID uint) ([]repository.ItemCount, error) {
	exists, err := s.restaurants.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRestaurantNotFound
	}

	rows, err := s.analytics.ItemCountsForRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.ItemCount{}
	}
	return rows, nil
}
