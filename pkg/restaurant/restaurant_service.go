package restaurant

import (
	"context"
	"errors"

	"restoboard/domain"
	"restoboard/entities"
	"restoboard/pkg/menu"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RestaurantService interface {
		CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest, ownerID string) (domain.RestaurantResponse, error)
		GetRestaurantsByOwner(ctx context.Context, ownerID string) ([]domain.RestaurantResponse, error)
		GetAllRestaurants(ctx context.Context) ([]domain.RestaurantResponse, error)
		UpdateRestaurant(ctx context.Context, id string, req domain.UpdateRestaurantRequest) (domain.RestaurantResponse, error)
		DeleteRestaurant(ctx context.Context, id string) error
		CountRestaurants(ctx context.Context) (int64, error)
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
		menuRepository       menu.MenuRepository
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository, menuRepository menu.MenuRepository) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		menuRepository:       menuRepository,
	}
}

// CreateRestaurant stores a restaurant for ownerID. Admin-created rows may
// carry an explicit owner id (a user id or the owner's email) in the request;
// it wins over the caller's id so admins can create on someone's behalf.
func (s *restaurantService) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest, ownerID string) (domain.RestaurantResponse, error) {
	owner := req.OwnerID
	if owner == "" {
		owner = ownerID
	}

	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	restaurant := &entities.Restaurant{
		ID:          uuid.New(),
		Name:        req.Name,
		Address:     req.Address,
		OwnerID:     owner,
		OwnerName:   req.OwnerName,
		OwnerEmail:  req.OwnerEmail,
		Phone:       req.Phone,
		Status:      status,
		Description: req.Description,
	}

	if err := s.restaurantRepository.CreateRestaurant(ctx, restaurant); err != nil {
		return domain.RestaurantResponse{}, err
	}

	return s.toResponse(ctx, restaurant), nil
}

func (s *restaurantService) GetRestaurantsByOwner(ctx context.Context, ownerID string) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetRestaurantsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		response = append(response, s.toResponse(ctx, restaurant))
	}
	return response, nil
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetAllRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		response = append(response, s.toResponse(ctx, restaurant))
	}
	return response, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, id string, req domain.UpdateRestaurantRequest) (domain.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RestaurantResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.RestaurantResponse{}, err
	}

	if req.Name != "" {
		restaurant.Name = req.Name
	}
	if req.Address != "" {
		restaurant.Address = req.Address
	}
	if req.OwnerName != "" {
		restaurant.OwnerName = req.OwnerName
	}
	if req.OwnerEmail != "" {
		restaurant.OwnerEmail = req.OwnerEmail
	}
	if req.Phone != "" {
		restaurant.Phone = req.Phone
	}
	if req.Status != "" {
		restaurant.Status = req.Status
	}
	if req.Description != "" {
		restaurant.Description = req.Description
	}

	if err := s.restaurantRepository.UpdateRestaurant(ctx, restaurant); err != nil {
		return domain.RestaurantResponse{}, err
	}

	return s.toResponse(ctx, restaurant), nil
}

// DeleteRestaurant does not cascade to menu items; orphaned items remain
// queryable by their stale restaurant id until cleaned up by hand.
func (s *restaurantService) DeleteRestaurant(ctx context.Context, id string) error {
	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRestaurantNotFound
		}
		return err
	}
	return s.restaurantRepository.DeleteRestaurant(ctx, id)
}

func (s *restaurantService) CountRestaurants(ctx context.Context) (int64, error) {
	return s.restaurantRepository.CountRestaurants(ctx)
}

// toResponse computes menu_item_count at read time; it is never stored on the
// restaurant row.
func (s *restaurantService) toResponse(ctx context.Context, restaurant *entities.Restaurant) domain.RestaurantResponse {
	count, err := s.menuRepository.CountMenuItemsByRestaurant(ctx, restaurant.ID.String())
	if err != nil {
		count = 0
	}

	return domain.RestaurantResponse{
		ID:            restaurant.ID.String(),
		Name:          restaurant.Name,
		Address:       restaurant.Address,
		OwnerID:       restaurant.OwnerID,
		OwnerName:     restaurant.OwnerName,
		OwnerEmail:    restaurant.OwnerEmail,
		Phone:         restaurant.Phone,
		Status:        restaurant.Status,
		Description:   restaurant.Description,
		MenuItemCount: count,
		CreatedAt:     restaurant.CreatedAt,
		UpdatedAt:     restaurant.UpdatedAt,
	}
}
