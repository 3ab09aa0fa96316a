package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"

	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	cust := seedCustomer(t, db, "g-1", "Asha")
	rest := seedRestaurant(t, db, "Spice Route", entity.AreaMumbai)
	p := seedPayment(t, db, cust.ID, entity.PaymentPass, 500)

	order, err := svc.Create(cust.ID, entity.VegManchurian, p.TransactionID, rest.RestaurantID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if order.OrderID == 0 {
		t.Error("order id not assigned")
	}
	if order.CustomerID != cust.ID {
		t.Errorf("customer = %d, want %d", order.CustomerID, cust.ID)
	}
}

func TestCreateOrderRejectsReusedPayment(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	cust := seedCustomer(t, db, "g-1", "Asha")
	rest := seedRestaurant(t, db, "Spice Route", entity.AreaMumbai)
	p := seedPayment(t, db, cust.ID, entity.PaymentPass, 500)
	seedOrder(t, db, cust.ID, p.TransactionID, rest.RestaurantID, entity.VegManchurian, time.Now().UTC())

	_, err := svc.Create(cust.ID, entity.VegFriedRice, p.TransactionID, rest.RestaurantID)
	if !errors.Is(err, ErrPaymentAlreadyUsed) {
		t.Fatalf("err = %v, want ErrPaymentAlreadyUsed", err)
	}
}

func TestCreateOrderRejectsForeignPayment(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := seedCustomer(t, db, "g-1", "Asha")
	thief := seedCustomer(t, db, "g-2", "Bala")
	rest := seedRestaurant(t, db, "Spice Route", entity.AreaMumbai)
	p := seedPayment(t, db, owner.ID, entity.PaymentPass, 500)

	_, err := svc.Create(thief.ID, entity.VegFriedRice, p.TransactionID, rest.RestaurantID)
	if !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("err = %v, want ErrInvalidPayment", err)
	}
}

func TestCreateOrderRejectsMissingPayment(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	cust := seedCustomer(t, db, "g-1", "Asha")
	rest := seedRestaurant(t, db, "Spice Route", entity.AreaMumbai)

	_, err := svc.Create(cust.ID, entity.VegFriedRice, 9999, rest.RestaurantID)
	if !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("err = %v, want ErrInvalidPayment", err)
	}
}

func TestCreateOrderRejectsFailedPayment(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	cust := seedCustomer(t, db, "g-1", "Asha")
	rest := seedRestaurant(t, db, "Spice Route", entity.AreaMumbai)
	p := seedPayment(t, db, cust.ID, entity.PaymentFail, 500)

	_, err := svc.Create(cust.ID, entity.VegFriedRice, p.TransactionID, rest.RestaurantID)
	if !errors.Is(err, ErrPaymentNotPassed) {
		t.Fatalf("err = %v, want ErrPaymentNotPassed", err)
	}
}

func TestCreateOrderRejectsUnknownRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	cust := seedCustomer(t, db, "g-1", "Asha")
	p := seedPayment(t, db, cust.ID, entity.PaymentPass, 500)

	_, err := svc.Create(cust.ID, entity.VegFriedRice, p.TransactionID, 777)
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("err = %v, want ErrRestaurantNotFound", err)
	}
}

func TestGetOrderHidesOtherCustomers(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	owner := seedCustomer(t, db, "g-1", "Asha")
	other := seedCustomer(t, db, "g-2", "Bala")
	rest := seedRestaurant(t, db, "Spice Route", entity.AreaMumbai)
	p := seedPayment(t, db, owner.ID, entity.PaymentPass, 500)
	order := seedOrder(t, db, owner.ID, p.TransactionID, rest.RestaurantID, entity.VegManchurian, time.Now().UTC())

	if _, err := svc.GetForCustomer(owner.ID, order.OrderID); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	if _, err := svc.GetForCustomer(other.ID, order.OrderID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}
