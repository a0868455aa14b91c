package menu

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"restoboard/domain"
	"restoboard/entities"
	"restoboard/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// RestaurantGetter resolves the owning restaurant for authorization
	// checks without importing the restaurant package.
	RestaurantGetter interface {
		GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
	}

	MenuService interface {
		CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest, userID string, role string) (domain.MenuItemResponse, error)
		GetMenuItemByID(ctx context.Context, id string) (domain.MenuItemResponse, error)
		GetMenuItemsByRestaurant(ctx context.Context, restaurantID string, category string, search string) ([]domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest, userID string, role string) (domain.MenuItemResponse, error)
		DeleteMenuItem(ctx context.Context, id string, userID string, role string) error
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string, role string) (string, error)
		CountMenuItems(ctx context.Context) (int64, error)
	}

	menuService struct {
		menuRepository MenuRepository
		restaurants    RestaurantGetter
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, restaurants RestaurantGetter, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		restaurants:    restaurants,
		s3:             s3,
	}
}

// Profit is derived from price and cost; it is never persisted.
func Profit(price, cost float64) float64 {
	return price - cost
}

// MarginPercent is the rounded percentage margin, 0 for a free item.
func MarginPercent(price, cost float64) int {
	if price == 0 {
		return 0
	}
	return int(math.Round((price - cost) / price * 100))
}

func (s *menuService) CreateMenuItem(ctx context.Context, req domain.CreateMenuItemRequest, userID string, role string) (domain.MenuItemResponse, error) {
	if req.Price < 0 {
		return domain.MenuItemResponse{}, domain.ErrNegativePrice
	}
	if req.Cost < 0 {
		return domain.MenuItemResponse{}, domain.ErrNegativeCost
	}

	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return domain.MenuItemResponse{}, domain.ErrParseUUID
	}

	if err := s.authorize(ctx, req.RestaurantID, userID, role); err != nil {
		return domain.MenuItemResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	item := &entities.MenuItem{
		ID:              uuid.New(),
		RestaurantID:    restaurantUUID,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		Cost:            req.Cost,
		Description:     req.Description,
		Status:          status,
		Ingredients:     req.Ingredients,
		Allergens:       req.Allergens,
		PrepTimeMinutes: req.PrepTimeMinutes,
		Portion:         req.Portion,
	}

	if err := s.menuRepository.CreateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toResponse(item), nil
}

func (s *menuService) GetMenuItemByID(ctx context.Context, id string) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}
	return toResponse(item), nil
}

// GetMenuItemsByRestaurant returns items in (category, name) order. Category
// and free-text filters narrow the list without disturbing that order.
func (s *menuService) GetMenuItemsByRestaurant(ctx context.Context, restaurantID string, category string, search string) ([]domain.MenuItemResponse, error) {
	items, err := s.menuRepository.GetMenuItemsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	items = filterMenuItems(items, category, search)

	response := make([]domain.MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toResponse(item))
	}
	return response, nil
}

// UpdateMenuItem propagates not-found instead of upserting; only the profile
// record has upsert-on-update semantics.
func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest, userID string, role string) (domain.MenuItemResponse, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	if err := s.authorize(ctx, item.RestaurantID.String(), userID, role); err != nil {
		return domain.MenuItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.MenuItemResponse{}, domain.ErrNegativePrice
		}
		item.Price = *req.Price
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			return domain.MenuItemResponse{}, domain.ErrNegativeCost
		}
		item.Cost = *req.Cost
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Status != "" {
		item.Status = req.Status
	}
	if req.Ingredients != "" {
		item.Ingredients = req.Ingredients
	}
	if req.Allergens != "" {
		item.Allergens = req.Allergens
	}
	if req.PrepTimeMinutes > 0 {
		item.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.Portion != "" {
		item.Portion = req.Portion
	}

	if err := s.menuRepository.UpdateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toResponse(item), nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string, userID string, role string) error {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if err := s.authorize(ctx, item.RestaurantID.String(), userID, role); err != nil {
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.menuRepository.DeleteMenuItem(ctx, id)
}

func (s *menuService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string, role string) (string, error) {
	item, err := s.menuRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrMenuItemNotFound
		}
		return "", err
	}

	if err := s.authorize(ctx, item.RestaurantID.String(), userID, role); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("menu-item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "menu-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "menu-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return "", uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.menuRepository.UpdateMenuItem(ctx, item); err != nil {
		return "", err
	}

	return item.ImageURL, nil
}

func (s *menuService) CountMenuItems(ctx context.Context) (int64, error) {
	return s.menuRepository.CountMenuItems(ctx)
}

// authorize allows the restaurant owner and any admin. An orphaned item whose
// restaurant row is gone is only manageable by admins.
func (s *menuService) authorize(ctx context.Context, restaurantID string, userID string, role string) error {
	if role == domain.RoleAdmin {
		return nil
	}

	restaurant, err := s.restaurants.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRestaurantNotFound
		}
		return err
	}

	if restaurant.OwnerID != userID {
		return domain.ErrUserNotAllowed
	}
	return nil
}

func filterMenuItems(items []*entities.MenuItem, category string, search string) []*entities.MenuItem {
	if (category == "" || category == "all") && search == "" {
		return items
	}

	query := strings.ToLower(search)
	filtered := make([]*entities.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func toResponse(item *entities.MenuItem) domain.MenuItemResponse {
	return domain.MenuItemResponse{
		ID:              item.ID.String(),
		RestaurantID:    item.RestaurantID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Price:           item.Price,
		Cost:            item.Cost,
		Profit:          Profit(item.Price, item.Cost),
		MarginPercent:   MarginPercent(item.Price, item.Cost),
		Description:     item.Description,
		Status:          item.Status,
		Ingredients:     item.Ingredients,
		Allergens:       item.Allergens,
		PrepTimeMinutes: item.PrepTimeMinutes,
		Portion:         item.Portion,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
	}
}
