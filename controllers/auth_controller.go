package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/pkg/resp"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/services"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/utils"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(db *gorm.DB, provider services.IdentityProvider, jwtSecret string, jwtTTL time.Duration) *AuthController {
	return &AuthController{
		service: services.NewAuthService(repository.NewCustomerRepository(db), provider, jwtSecret, jwtTTL),
	}
}

// GET /auth/login → redirect to the provider's consent screen
func (ac *AuthController) Login(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, ac.service.LoginURL())
}

// GET /auth/callback?code=...
func (ac *AuthController) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		resp.BadRequest(c, "authorization code not found")
		return
	}

	token, customer, err := ac.service.HandleCallback(c.Request.Context(), code)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         customer,
	})
}

// GET /auth/me (gated)
func (ac *AuthController) Me(c *gin.Context) {
	customer, err := ac.service.Me(utils.CurrentCustomerID(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.Unauthorized(c, "user not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, customer)
}
