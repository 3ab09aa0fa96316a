package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/utils"
)

// IdentityProvider is the external identity collaborator: it produces the
// provider's consent URL and exchanges an authorization code for the
// caller's external id and display name. The Google implementation lives in
// pkg/googleauth; tests substitute a stub.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (googleID, name string, err error)
}

// AuthService handles login via the external identity provider and mints the
// bearer tokens the access gate verifies.
type AuthService struct {
	customers *repository.CustomerRepository
	provider  IdentityProvider
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(customers *repository.CustomerRepository, provider IdentityProvider, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		customers: customers,
		provider:  provider,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// LoginURL returns the provider consent URL with a fresh state parameter.
func (s *AuthService) LoginURL() string {
	return s.provider.AuthCodeURL(uuid.NewString())
}

// HandleCallback exchanges the authorization code, upserts the customer by
// external id, and returns a signed bearer token for them.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (string, *entity.Customer, error) {
	googleID, name, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return "", nil, err
	}
	if googleID == "" {
		return "", nil, errors.New("invalid user info from provider")
	}

	customer, err := s.customers.FindByGoogleID(googleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = &entity.Customer{GoogleID: googleID, Name: name}
		if err := s.customers.Create(customer); err != nil {
			return "", nil, err
		}
	} else if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(customer.ID, customer.GoogleID, customer.Name, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

// Me loads the authenticated customer's record.
func (s *AuthService) Me(customerID uint) (*entity.Customer, error) {
	return s.customers.FindByID(customerID)
}
