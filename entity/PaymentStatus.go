package entity

// PaymentStatus is the outcome of a payment attempt.
type PaymentStatus string

const (
	PaymentPass PaymentStatus = "pass"
	PaymentFail PaymentStatus = "fail"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPass || s == PaymentFail
}
