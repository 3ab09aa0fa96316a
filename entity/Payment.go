package entity

import "time"

type Payment struct {
	TransactionID uint          `gorm:"primaryKey" json:"transaction_id"`
	Status        PaymentStatus `gorm:"not null" json:"status"`
	PaymentType   PaymentMethod `gorm:"not null" json:"payment_type"`
	Amount        float64       `gorm:"not null;default:0" json:"amount"`
	Currency      string        `gorm:"not null;default:INR" json:"currency"`
	CreatedAt     time.Time     `json:"created_at"`

	CustomerID uint     `gorm:"index;not null" json:"customer_id"`
	Customer   Customer `json:"-"`
}
