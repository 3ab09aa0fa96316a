package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/configs"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/controllers"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/middlewares"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/pkg/googleauth"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/utils"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	db := configs.DB()
	provider := googleauth.New(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)

	// Controllers
	authCtrl := controllers.NewAuthController(db, provider, cfg.JWTSecret, cfg.JWTTTL)
	restCtrl := controllers.NewRestaurantController(db)
	payCtrl := controllers.NewPaymentController(db)
	orderCtrl := controllers.NewOrderController(db)
	analyticsCtrl := controllers.NewAnalyticsController(db)

	gate := middlewares.AuthMiddleware(utils.VerifyToken(cfg.JWTSecret))

	// Auth (public)
	a := r.Group("/auth")
	{
		a.GET("/login", authCtrl.Login)
		a.GET("/callback", authCtrl.Callback)
	}
	a.GET("/me", gate, authCtrl.Me)

	// CRUD (all behind the gate)
	rest := r.Group("/restaurants", gate)
	{
		rest.POST("", restCtrl.Create)
		rest.GET("", restCtrl.List)
		rest.GET("/:restaurant_id", restCtrl.Detail)
		rest.PATCH("/:restaurant_id", restCtrl.Update)
		rest.DELETE("/:restaurant_id", restCtrl.Delete)
	}

	pay := r.Group("/payments", gate)
	{
		pay.POST("", payCtrl.Create)
		pay.GET("", payCtrl.List)
		pay.GET("/:transaction_id", payCtrl.Detail)
	}

	ord := r.Group("/orders", gate)
	{
		ord.POST("", orderCtrl.Create)
		ord.GET("", orderCtrl.List)
		ord.GET("/:order_id", orderCtrl.Detail)
	}

	// Analytics (read-only, behind the gate)
	analytics := r.Group("/analytics", gate)
	{
		analytics.GET("/earnings/:report", analyticsCtrl.Earnings)
		analytics.GET("/top-customers", analyticsCtrl.TopCustomers)
		analytics.GET("/daily-revenue", analyticsCtrl.DailyRevenue)
		analytics.GET("/restaurant/:restaurant_id/items-summary", analyticsCtrl.RestaurantItemsSummary)
	}
}
