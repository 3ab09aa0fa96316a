package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
	"github.com/Aditya2005ads/fastapi-google-oauth-backend/repository"
)

type RestaurantService struct {
	restaurants *repository.RestaurantRepository
}

func NewRestaurantService(restaurants *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurants: restaurants}
}

func (s *RestaurantService) Create(name string, area entity.Area) (*entity.Restaurant, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if !area.Valid() {
		return nil, errors.New("invalid area")
	}

	restaurant := &entity.Restaurant{Name: name, Area: area}
	if err := s.restaurants.Create(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.restaurants.FindAll()
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Update applies a partial update; nil fields are left unchanged.
func (s *RestaurantService) Update(id uint, name *string, area *entity.Area) (*entity.Restaurant, error) {
	restaurant, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		restaurant.Name = *name
	}
	if area != nil {
		if !area.Valid() {
			return nil, errors.New("invalid area")
		}
		restaurant.Area = *area
	}
	if err := s.restaurants.Save(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) Delete(id uint) error {
	restaurant, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.restaurants.Delete(restaurant)
}
