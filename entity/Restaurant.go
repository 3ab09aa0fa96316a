package entity

type Restaurant struct {
	RestaurantID uint   `gorm:"primaryKey" json:"restaurant_id"`
	Name         string `gorm:"not null" json:"name"`
	Area         Area   `gorm:"not null" json:"area"`

	Orders []Order `gorm:"foreignKey:RestaurantID" json:"-"`
}
