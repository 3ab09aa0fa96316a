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
)

type RestaurantController struct {
	service *services.RestaurantService
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{
		service: services.NewRestaurantService(repository.NewRestaurantRepository(db)),
	}
}

type createRestaurantReq struct {
	Name string      `json:"name" binding:"required"`
	Area entity.Area `json:"area" binding:"required"`
}

type updateRestaurantReq struct {
	Name *string      `json:"name"`
	Area *entity.Area `json:"area"`
}

func restaurantID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "restaurant_id must be an integer")
		return 0, false
	}
	return uint(id), true
}

// POST /restaurants
func (rc *RestaurantController) Create(c *gin.Context) {
	var req createRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !req.Area.Valid() {
		resp.BadRequest(c, "invalid area")
		return
	}

	restaurant, err := rc.service.Create(req.Name, req.Area)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, restaurant)
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	restaurants, err := rc.service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /restaurants/:restaurant_id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}

	restaurant, err := rc.service.Get(id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		resp.NotFound(c, "restaurant not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, restaurant)
}

// PATCH /restaurants/:restaurant_id
func (rc *RestaurantController) Update(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}

	var req updateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Area != nil && !req.Area.Valid() {
		resp.BadRequest(c, "invalid area")
		return
	}

	restaurant, err := rc.service.Update(id, req.Name, req.Area)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		resp.NotFound(c, "restaurant not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, restaurant)
}

// DELETE /restaurants/:restaurant_id
func (rc *RestaurantController) Delete(c *gin.Context) {
	id, ok := restaurantID(c)
	if !ok {
		return
	}

	err := rc.service.Delete(id)
	if errors.Is(err, services.ErrRestaurantNotFound) {
		resp.NotFound(c, "restaurant not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}
