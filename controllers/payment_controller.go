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

type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		service: services.NewPaymentService(repository.NewPaymentRepository(db)),
	}
}

type createPaymentReq struct {
	Status      entity.PaymentStatus `json:"status" binding:"required"`
	PaymentType entity.PaymentMethod `json:"payment_type" binding:"required"`
	Amount      float64              `json:"amount" binding:"min=0"`
	Currency    string               `json:"currency"`
}

// POST /payments
func (pc *PaymentController) Create(c *gin.Context) {
	var req createPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	payment, err := pc.service.Create(utils.CurrentCustomerID(c), req.Status, req.PaymentType, req.Amount, req.Currency)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, payment)
}

// GET /payments
func (pc *PaymentController) List(c *gin.Context) {
	payments, err := pc.service.ListForCustomer(utils.CurrentCustomerID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, payments)
}

// GET /payments/:transaction_id
func (pc *PaymentController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("transaction_id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "transaction_id must be an integer")
		return
	}

	payment, err := pc.service.GetForCustomer(utils.CurrentCustomerID(c), uint(id))
	if errors.Is(err, services.ErrPaymentNotFound) {
		resp.NotFound(c, "payment not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, payment)
}
