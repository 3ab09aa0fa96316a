package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/pkg/resp"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/services"
)

type AnalyticsController struct {
	service *services.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{
		service: services.NewAnalyticsService(
			repository.NewAnalyticsRepository(db),
			repository.NewRestaurantRepository(db),
		),
	}
}

// earningsReport is a parsed /earnings/:report path segment: either
// "{region}-last-month" or "veg-{region}".
type earningsReport struct {
	area      entity.Area
	lastMonth bool
}

func parseEarningsReport(report string) (earningsReport, error) {
	switch {
	case strings.HasSuffix(report, "-last-month"):
		slug := strings.TrimSuffix(report, "-last-month")
		area, ok := entity.AreaFromSlug(slug)
		if !ok {
			return earningsReport{}, errors.New("unknown region: " + slug)
		}
		return earningsReport{area: area, lastMonth: true}, nil
	case strings.HasPrefix(report, "veg-"):
		slug := strings.TrimPrefix(report, "veg-")
		area, ok := entity.AreaFromSlug(slug)
		if !ok {
			return earningsReport{}, errors.New("unknown region: " + slug)
		}
		return earningsReport{area: area}, nil
	}
	return earningsReport{}, errors.New("unknown earnings report: " + report)
}

// GET /analytics/earnings/:report
func (ac *AnalyticsController) Earnings(c *gin.Context) {
	report, err := parseEarningsReport(c.Param("report"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var result *services.EarningsResult
	if report.lastMonth {
		result, err = ac.service.EarningsLastMonth(report.area)
	} else {
		result, err = ac.service.VegEarnings(report.area)
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /analytics/top-customers
func (ac *AnalyticsController) TopCustomers(c *gin.Context) {
	rows, err := ac.service.TopCustomers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /analytics/daily-revenue
func (ac *AnalyticsController) DailyRevenue(c *gin.Context) {
	rows, err := ac.service.DailyRevenue()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /analytics/restaurant/:restaurant_id/items-summary
func (ac *AnalyticsController) RestaurantItemsSummary(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "restaurant_id must be a positive integer")
		return
	}

	rows, err := ac.service.RestaurantItemsSummary(uint(id))
	if errors.Is(err, services.ErrRestaurantNotFound) {
		resp.NotFound(c, "restaurant not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
