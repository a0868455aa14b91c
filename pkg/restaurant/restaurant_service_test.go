package restaurant

import (
	"context"
	"testing"

	"restoboard/domain"
	"restoboard/entities"
	"restoboard/pkg/menu"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRestaurantService(t *testing.T) (RestaurantService, menu.MenuRepository) {
	t.Helper()

	// Foreign keys on, so a schema that enforces the restaurant -> menu item
	// association would fail these tests the same way it fails on postgres.
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Restaurant{}, &entities.MenuItem{}))

	menuRepo := menu.NewMenuRepository(db)
	return NewRestaurantService(NewRestaurantRepository(db), menuRepo), menuRepo
}

func TestCreateRestaurantOwnerResolution(t *testing.T) {
	service, _ := setupRestaurantService(t)
	ctx := context.Background()

	// A plain owner request: the caller's id becomes the owner.
	own, err := service.CreateRestaurant(ctx, domain.CreateRestaurantRequest{
		Name: "Warung Tengah",
	}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", own.OwnerID)
	assert.Equal(t, domain.StatusActive, own.Status)

	// An admin request with an explicit owner wins over the caller's id.
	delegated, err := service.CreateRestaurant(ctx, domain.CreateRestaurantRequest{
		Name:    "Sate Pak Budi",
		OwnerID: "budi@example.com",
		Status:  domain.StatusPending,
	}, "admin-id")
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", delegated.OwnerID)
	assert.Equal(t, domain.StatusPending, delegated.Status)
}

func TestGetRestaurantsByOwnerScopesToOwner(t *testing.T) {
	service, _ := setupRestaurantService(t)
	ctx := context.Background()

	_, err := service.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Mine"}, "owner-1")
	require.NoError(t, err)
	_, err = service.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Theirs"}, "owner-2")
	require.NoError(t, err)

	mine, err := service.GetRestaurantsByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)

	all, err := service.GetAllRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMenuItemCountComputedAtReadTime(t *testing.T) {
	service, menuRepo := setupRestaurantService(t)
	ctx := context.Background()

	created, err := service.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Warung Tengah"}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), created.MenuItemCount)

	restaurantID := uuid.MustParse(created.ID)
	for _, name := range []string{"Burger", "Cake"} {
		require.NoError(t, menuRepo.CreateMenuItem(ctx, &entities.MenuItem{
			ID:           uuid.New(),
			RestaurantID: restaurantID,
			Name:         name,
			Category:     "Main",
			Price:        5,
		}))
	}

	listed, err := service.GetRestaurantsByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(2), listed[0].MenuItemCount)
}

func TestUpdateRestaurantNotFound(t *testing.T) {
	service, _ := setupRestaurantService(t)
	ctx := context.Background()

	_, err := service.UpdateRestaurant(ctx, uuid.NewString(), domain.UpdateRestaurantRequest{
		Name: "Renamed",
	})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestUpdateRestaurantMergesFields(t *testing.T) {
	service, _ := setupRestaurantService(t)
	ctx := context.Background()

	created, err := service.CreateRestaurant(ctx, domain.CreateRestaurantRequest{
		Name:    "Warung Tengah",
		Address: "Jl. Merdeka 1",
	}, "owner-1")
	require.NoError(t, err)

	updated, err := service.UpdateRestaurant(ctx, created.ID, domain.UpdateRestaurantRequest{
		Status: domain.StatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Warung Tengah", updated.Name)
	assert.Equal(t, "Jl. Merdeka 1", updated.Address)
	assert.Equal(t, domain.StatusInactive, updated.Status)
}

func TestDeleteRestaurantLeavesMenuItems(t *testing.T) {
	service, menuRepo := setupRestaurantService(t)
	ctx := context.Background()

	created, err := service.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Warung Tengah"}, "owner-1")
	require.NoError(t, err)

	restaurantID := uuid.MustParse(created.ID)
	require.NoError(t, menuRepo.CreateMenuItem(ctx, &entities.MenuItem{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         "Burger",
		Category:     "Main",
		Price:        5,
	}))

	require.NoError(t, service.DeleteRestaurant(ctx, created.ID))

	_, err = service.UpdateRestaurant(ctx, created.ID, domain.UpdateRestaurantRequest{Name: "Gone"})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	// The delete does not cascade; items keep their stale restaurant id.
	orphans, err := menuRepo.GetMenuItemsByRestaurant(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, orphans, 1)

	err = service.DeleteRestaurant(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}
