package menu

import (
	"context"

	"restoboard/entities"

	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		CreateMenuItem(ctx context.Context, item *entities.MenuItem) error
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		GetMenuItemsByRestaurant(ctx context.Context, restaurantID string) ([]*entities.MenuItem, error)
		UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error
		DeleteMenuItem(ctx context.Context, id string) error
		CountMenuItems(ctx context.Context) (int64, error)
		CountMenuItemsByRestaurant(ctx context.Context, restaurantID string) (int64, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetMenuItemsByRestaurant lists items ordered by category, then name.
// Ordering lives in the query; callers can rely on it.
func (r *menuRepository) GetMenuItemsByRestaurant(ctx context.Context, restaurantID string) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category asc, name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MenuItem{}).Error
}

func (r *menuRepository) CountMenuItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *menuRepository) CountMenuItemsByRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
