package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/utils"

	"gorm.io/gorm"
)

type stubProvider struct {
	googleID string
	name     string
	err      error
}

func (p *stubProvider) AuthCodeURL(state string) string {
	return "https://provider.example/consent?state=" + state
}

func (p *stubProvider) Exchange(ctx context.Context, code string) (string, string, error) {
	return p.googleID, p.name, p.err
}

func newAuthService(db *gorm.DB, provider IdentityProvider) *AuthService {
	return NewAuthService(repository.NewCustomerRepository(db), provider, "test-secret", time.Hour)
}

func TestHandleCallbackCreatesCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, &stubProvider{googleID: "g-123", name: "Asha"})

	token, customer, err := svc.HandleCallback(context.Background(), "some-code")
	if err != nil {
		t.Fatalf("HandleCallback: %v", err)
	}
	if customer.GoogleID != "g-123" || customer.Name != "Asha" {
		t.Errorf("customer = %+v", customer)
	}

	claims, err := utils.VerifyToken("test-secret")(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.CustomerID != customer.ID || claims.Name != "Asha" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestHandleCallbackReusesExistingCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, &stubProvider{googleID: "g-123", name: "Asha"})

	_, first, err := svc.HandleCallback(context.Background(), "code-1")
	if err != nil {
		t.Fatalf("first callback: %v", err)
	}
	_, second, err := svc.HandleCallback(context.Background(), "code-2")
	if err != nil {
		t.Fatalf("second callback: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("customer ids differ: %d vs %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&entity.Customer{}).Count(&count)
	if count != 1 {
		t.Errorf("customer count = %d, want 1", count)
	}
}

func TestHandleCallbackProviderError(t *testing.T) {
	db := newTestDB(t)
	wantErr := errors.New("exchange failed")
	svc := newAuthService(db, &stubProvider{err: wantErr})

	_, _, err := svc.HandleCallback(context.Background(), "bad-code")
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestHandleCallbackEmptyIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, &stubProvider{googleID: "", name: ""})

	_, _, err := svc.HandleCallback(context.Background(), "code")
	if err == nil {
		t.Fatal("expected error for empty provider identity")
	}
}

func TestLoginURLCarriesState(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db, &stubProvider{})

	url := svc.LoginURL()
	if url == "https://provider.example/consent?state=" {
		t.Error("state parameter is empty")
	}
}
