package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/utils"
)

const testSecret = "test-secret"

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(utils.VerifyToken(testSecret)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"customerId": utils.CurrentCustomerID(c)})
	})
	return r
}

func request(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w := request(t, newGatedRouter(), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareWrongScheme(t *testing.T) {
	w := request(t, newGatedRouter(), "Basic abc123")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	w := request(t, newGatedRouter(), "Bearer not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	token, err := utils.GenerateToken(7, "g-7", "Asha", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := request(t, newGatedRouter(), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(7, "g-7", "Asha", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := request(t, newGatedRouter(), "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := utils.GenerateToken(7, "g-7", "Asha", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := request(t, newGatedRouter(), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"customerId":7}` {
		t.Errorf("body = %s", body)
	}
}
