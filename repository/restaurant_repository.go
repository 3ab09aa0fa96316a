package repository

import (
	"gorm.io/gorm"

	"github.com/Aditya2005ads/fastapi-google-oauth-backend/entity"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) Create(restaurant *entity.Restaurant) error {
	return r.db.Create(restaurant).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := r.db.First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	err := r.db.Order("restaurant_id ASC").Find(&restaurants).Error
	return restaurants, err
}

func (r *RestaurantRepository) Save(restaurant *entity.Restaurant) error {
	return r.db.Save(restaurant).Error
}

func (r *RestaurantRepository) Delete(restaurant *entity.Restaurant) error {
	return r.db.Delete(restaurant).Error
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Restaurant{}).Where("restaurant_id = ?", id).Count(&count).Error
	return count > 0, err
}
