package repository

import (
	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(payment *entity.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepository) FindByID(transactionID uint) (*entity.Payment, error) {
	var payment entity.Payment
	if err := r.db.First(&payment, transactionID).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) ListByCustomer(customerID uint) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.Where("customer_id = ?", customerID).Order("transaction_id ASC").Find(&payments).Error
	return payments, err
}
