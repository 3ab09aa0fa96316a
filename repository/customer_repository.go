package repository

import (
	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(customer *entity.Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var customer entity.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) FindByGoogleID(googleID string) (*entity.Customer, error) {
	var customer entity.Customer
	if err := r.db.Where("google_id = ?", googleID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
