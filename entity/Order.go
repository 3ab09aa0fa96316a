package entity

import "time"

type Order struct {
	OrderID   uint      `gorm:"primaryKey" json:"order_id"`
	ItemName  FoodItem  `gorm:"not null" json:"item_name"`
	CreatedAt time.Time `json:"created_at"`

	// The schema allows many orders per payment; order creation enforces
	// one-to-one so analytics sums never double-count a payment.
	TransactionID uint    `gorm:"index;not null" json:"transaction_id"`
	Payment       Payment `gorm:"foreignKey:TransactionID;references:TransactionID" json:"-"`

	RestaurantID uint       `gorm:"index;not null" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`

	CustomerID uint     `gorm:"index;not null" json:"customer_id"`
	Customer   Customer `json:"-"`
}
