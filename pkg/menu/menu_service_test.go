package menu

import (
	"context"
	"testing"

	"restoboard/domain"
	"restoboard/entities"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// staticRestaurants serves ownership lookups from a fixed map.
type staticRestaurants struct {
	byID map[string]*entities.Restaurant
}

func (s *staticRestaurants) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	restaurant, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return restaurant, nil
}

func setupMenuService(t *testing.T, ownerID string) (MenuService, uuid.UUID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Restaurant{}, &entities.MenuItem{}))

	restaurantID := uuid.New()
	restaurants := &staticRestaurants{byID: map[string]*entities.Restaurant{
		restaurantID.String(): {ID: restaurantID, Name: "Warung Tengah", OwnerID: ownerID},
	}}

	return NewMenuService(NewMenuRepository(db), restaurants, nil), restaurantID
}

func TestProfitAndMargin(t *testing.T) {
	assert.Equal(t, 6.0, Profit(10, 4))
	assert.Equal(t, 60, MarginPercent(10, 4))
	assert.Equal(t, 0, MarginPercent(0, 4))
	assert.Equal(t, -3.0, Profit(2, 5))
	assert.Equal(t, 33, MarginPercent(3, 2))
}

func TestCreateMenuItemRejectsNegativeValues(t *testing.T) {
	service, restaurantID := setupMenuService(t, "owner-1")
	ctx := context.Background()

	_, err := service.CreateMenuItem(ctx, domain.CreateMenuItemRequest{
		RestaurantID: restaurantID.String(),
		Name:         "Nasi Goreng",
		Category:     "Main",
		Price:        -1,
	}, "owner-1", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrNegativePrice)

	_, err = service.CreateMenuItem(ctx, domain.CreateMenuItemRequest{
		RestaurantID: restaurantID.String(),
		Name:         "Nasi Goreng",
		Category:     "Main",
		Price:        10,
		Cost:         -1,
	}, "owner-1", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrNegativeCost)
}

func TestCreateMenuItemDefaultsStatusAndDerivesProfit(t *testing.T) {
	service, restaurantID := setupMenuService(t, "owner-1")
	ctx := context.Background()

	res, err := service.CreateMenuItem(ctx, domain.CreateMenuItemRequest{
		RestaurantID: restaurantID.String(),
		Name:         "Nasi Goreng",
		Category:     "Main",
		Price:        10,
		Cost:         4,
	}, "owner-1", domain.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusActive, res.Status)
	assert.Equal(t, 6.0, res.Profit)
	assert.Equal(t, 60, res.MarginPercent)
}

func TestCreateMenuItemAuthorization(t *testing.T) {
	service, restaurantID := setupMenuService(t, "owner-1")
	ctx := context.Background()

	req := domain.CreateMenuItemRequest{
		RestaurantID: restaurantID.String(),
		Name:         "Nasi Goreng",
		Category:     "Main",
		Price:        10,
	}

	_, err := service.CreateMenuItem(ctx, req, "intruder", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	// Admins bypass the ownership check.
	_, err = service.CreateMenuItem(ctx, req, "intruder", domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestGetMenuItemsByRestaurantOrdersByCategoryThenName(t *testing.T) {
	service, restaurantID := setupMenuService(t, "owner-1")
	ctx := context.Background()

	for _, seed := range []struct{ name, category string }{
		{"Burger", "Main"},
		{"Cake", "Dessert"},
		{"Apple Pie", "Main"},
	} {
		_, err := service.CreateMenuItem(ctx, domain.CreateMenuItemRequest{
			RestaurantID: restaurantID.String(),
			Name:         seed.name,
			Category:     seed.category,
			Price:        5,
		}, "owner-1", domain.RoleUser)
		require.NoError(t, err)
	}

	items, err := service.GetMenuItemsByRestaurant(ctx, restaurantID.String(), "", "")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Cake", items[0].Name)
	assert.Equal(t, "Apple Pie", items[1].Name)
	assert.Equal(t, "Burger", items[2].Name)
}

func TestGetMenuItemsByRestaurantFilters(t *testing.T) {
	service, restaurantID := setupMenuService(t, "owner-1")
	ctx := context.Background()

	for _, seed := range []struct{ name, category, description string }{
		{"Iced Tea", "Drinks", "sweet black tea"},
		{"Espresso", "Drinks", "double shot"},
		{"Burger", "Main", "beef patty"},
	} {
		_, err := service.CreateMenuItem(ctx, domain.CreateMenuItemRequest{
			RestaurantID: restaurantID.String(),
			Name:         seed.name,
			Category:     seed.category,
			Description:  seed.description,
			Price:        5,
		}, "owner-1", domain.RoleUser)
		require.NoError(t, err)
	}

	drinks, err := service.GetMenuItemsByRestaurant(ctx, restaurantID.String(), "Drinks", "")
	require.NoError(t, err)
	assert.Len(t, drinks, 2)

	// "all" is the same as no category filter.
	all, err := service.GetMenuItemsByRestaurant(ctx, restaurantID.String(), "all", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Search is case-insensitive and matches descriptions too.
	tea, err := service.GetMenuItemsByRestaurant(ctx, restaurantID.String(), "", "TEA")
	require.NoError(t, err)
	require.Len(t, tea, 1)
	assert.Equal(t, "Iced Tea", tea[0].Name)

	beef, err := service.GetMenuItemsByRestaurant(ctx, restaurantID.String(), "Main", "beef")
	require.NoError(t, err)
	assert.Len(t, beef, 1)

	none, err := service.GetMenuItemsByRestaurant(ctx, restaurantID.String(), "Drinks", "beef")
	require.NoError(t, err)
	assert.Len(t, none, 0)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	service, _ := setupMenuService(t, "owner-1")
	ctx := context.Background()

	_, err := service.UpdateMenuItem(ctx, uuid.NewString(), domain.UpdateMenuItemRequest{
		Name: "Renamed",
	}, "owner-1", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestUpdateMenuItemMergesFields(t *testing.T) {
	service, restaurantID := setupMenuService(t, "owner-1")
	ctx := context.Background()

	created, err := service.CreateMenuItem(ctx, domain.CreateMenuItemRequest{
		RestaurantID: restaurantID.String(),
		Name:         "Burger",
		Category:     "Main",
		Price:        10,
		Cost:         4,
	}, "owner-1", domain.RoleUser)
	require.NoError(t, err)

	newPrice := 12.0
	updated, err := service.UpdateMenuItem(ctx, created.ID, domain.UpdateMenuItemRequest{
		Price: &newPrice,
	}, "owner-1", domain.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "Burger", updated.Name)
	assert.Equal(t, 12.0, updated.Price)
	assert.Equal(t, 4.0, updated.Cost)
	assert.Equal(t, 8.0, updated.Profit)

	badPrice := -1.0
	_, err = service.UpdateMenuItem(ctx, created.ID, domain.UpdateMenuItemRequest{
		Price: &badPrice,
	}, "owner-1", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestDeleteMenuItemNotFound(t *testing.T) {
	service, _ := setupMenuService(t, "owner-1")
	ctx := context.Background()

	err := service.DeleteMenuItem(ctx, uuid.NewString(), "owner-1", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}
