package entity

type Customer struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	GoogleID string `gorm:"uniqueIndex;not null" json:"google_id"`
	Name     string `gorm:"not null" json:"name"`
	Age      *int   `json:"age,omitempty"`

	Payments []Payment `gorm:"foreignKey:CustomerID" json:"-"`
	Orders   []Order   `gorm:"foreignKey:CustomerID" json:"-"`
}
