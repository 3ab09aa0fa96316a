package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidPayment     = errors.New("invalid or unauthorized payment")
	ErrPaymentNotPassed   = errors.New("payment not successful")
	ErrPaymentAlreadyUsed = errors.New("order with this transaction ID already exists")
)

type OrderService struct {
	orders      *repository.OrderRepository
	payments    *repository.PaymentRepository
	restaurants *repository.RestaurantRepository
}

func NewOrderService(orders *repository.OrderRepository, payments *repository.PaymentRepository, restaurants *repository.RestaurantRepository) *OrderService {
	return &OrderService{orders: orders, payments: payments, restaurants: restaurants}
}

// Create places an order against an existing payment. The payment must
// belong to the caller, have passed, and not already back another order —
// the last rule keeps payment↔order one-to-one so revenue reports never
// count a payment twice.
func (s *OrderService) Create(customerID uint, item entity.FoodItem, transactionID, restaurantID uint) (*entity.Order, error) {
	if !item.Valid() {
		return nil, errors.New("invalid item name")
	}

	used, err := s.orders.CountByTransaction(transactionID)
	if err != nil {
		return nil, err
	}
	if used > 0 {
		return nil, ErrPaymentAlreadyUsed
	}

	payment, err := s.payments.FindByID(transactionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidPayment
	}
	if err != nil {
		return nil, err
	}
	if payment.CustomerID != customerID {
		return nil, ErrInvalidPayment
	}
	if payment.Status != entity.PaymentPass {
		return nil, ErrPaymentNotPassed
	}

	exists, err := s.restaurants.Exists(restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRestaurantNotFound
	}

	order := &entity.Order{
		ItemName:      item,
		TransactionID: transactionID,
		RestaurantID:  restaurantID,
		CustomerID:    customerID,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListForCustomer(customerID uint) ([]entity.Order, error) {
	return s.orders.ListByCustomer(customerID)
}

func (s *OrderService) GetForCustomer(customerID, orderID uint) (*entity.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
