package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentService struct {
	payments *repository.PaymentRepository
}

func NewPaymentService(payments *repository.PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

func (s *PaymentService) Create(customerID uint, status entity.PaymentStatus, method entity.PaymentMethod, amount float64, currency string) (*entity.Payment, error) {
	if !status.Valid() {
		return nil, errors.New("invalid payment status")
	}
	if !method.Valid() {
		return nil, errors.New("invalid payment type")
	}
	if amount < 0 {
		return nil, errors.New("amount must be non-negative")
	}
	if currency == "" {
		currency = "INR"
	}

	payment := &entity.Payment{
		Status:      status,
		PaymentType: method,
		Amount:      amount,
		Currency:    currency,
		CustomerID:  customerID,
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) ListForCustomer(customerID uint) ([]entity.Payment, error) {
	return s.payments.ListByCustomer(customerID)
}

// GetForCustomer returns a payment only if it belongs to the caller; a
// payment owned by someone else looks identical to a missing one.
func (s *PaymentService) GetForCustomer(customerID, transactionID uint) (*entity.Payment, error) {
	payment, err := s.payments.FindByID(transactionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	if payment.CustomerID != customerID {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}
