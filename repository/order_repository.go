package repository

import (
	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(order *entity.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) FindByID(orderID uint) (*entity.Order, error) {
	var order entity.Order
	if err := r.db.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListByCustomer(customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Where("customer_id = ?", customerID).Order("order_id ASC").Find(&orders).Error
	return orders, err
}

// CountByTransaction reports how many orders already reference a payment.
// Order creation uses it to keep the payment↔order relationship one-to-one.
func (r *OrderRepository) CountByTransaction(transactionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Order{}).Where("transaction_id = ?", transactionID).Count(&count).Error
	return count, err
}
