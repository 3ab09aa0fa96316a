package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/pkg/resp"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/services"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/utils"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		service: services.NewOrderService(
			repository.NewOrderRepository(db),
			repository.NewPaymentRepository(db),
			repository.NewRestaurantRepository(db),
		),
	}
}

type createOrderReq struct {
	ItemName      entity.FoodItem `json:"item_name" binding:"required"`
	TransactionID uint            `json:"transaction_id" binding:"required"`
	RestaurantID  uint            `json:"restaurant_id" binding:"required"`
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !req.ItemName.Valid() {
		resp.BadRequest(c, "invalid item name")
		return
	}

	order, err := oc.service.Create(utils.CurrentCustomerID(c), req.ItemName, req.TransactionID, req.RestaurantID)
	switch {
	case err == nil:
		resp.Created(c, order)
	case errors.Is(err, services.ErrPaymentAlreadyUsed),
		errors.Is(err, services.ErrInvalidPayment),
		errors.Is(err, services.ErrPaymentNotPassed),
		errors.Is(err, services.ErrRestaurantNotFound):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.service.ListForCustomer(utils.CurrentCustomerID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:order_id
func (oc *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "order_id must be an integer")
		return
	}

	order, err := oc.service.GetForCustomer(utils.CurrentCustomerID(c), uint(id))
	if errors.Is(err, services.ErrOrderNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}
