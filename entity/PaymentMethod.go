package entity

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "UPI"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentUPI
}
