package dashboard

import (
	"context"
	"testing"

	"restoboard/domain"
	"restoboard/entities"
	"restoboard/pkg/feedback"
	"restoboard/pkg/jwt"
	"restoboard/pkg/menu"
	"restoboard/pkg/restaurant"
	"restoboard/pkg/user"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type dashboardFixture struct {
	db                *gorm.DB
	dashboardService  DashboardService
	userService       user.UserService
	restaurantService restaurant.RestaurantService
	feedbackService   feedback.FeedbackService
}

func setupDashboard(t *testing.T) *dashboardFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.UserProfile{},
		&entities.Restaurant{},
		&entities.MenuItem{},
		&entities.Feedback{},
	))

	userRepo := user.NewUserRepository(db)
	restaurantRepo := restaurant.NewRestaurantRepository(db)
	menuRepo := menu.NewMenuRepository(db)
	feedbackRepo := feedback.NewFeedbackRepository(db)

	userService := user.NewUserService(userRepo, jwt.NewJWTService(), "admin@restoboard.app")
	restaurantService := restaurant.NewRestaurantService(restaurantRepo, menuRepo)
	menuService := menu.NewMenuService(menuRepo, restaurantRepo, nil)
	feedbackService := feedback.NewFeedbackService(feedbackRepo, userRepo)

	return &dashboardFixture{
		db:                db,
		dashboardService:  NewDashboardService(userService, restaurantService, menuService, feedbackService),
		userService:       userService,
		restaurantService: restaurantService,
		feedbackService:   feedbackService,
	}
}

func (f *dashboardFixture) registerOwner(t *testing.T, email string) string {
	t.Helper()
	res, err := f.userService.Register(context.Background(), domain.RegisterRequest{
		Email:    email,
		Password: "secret-password",
		FullName: "Restaurant Owner",
	})
	require.NoError(t, err)
	return res.ID
}

func TestRefreshWithNoRestaurants(t *testing.T) {
	f := setupDashboard(t)
	ctx := context.Background()
	ownerID := f.registerOwner(t, "owner@example.com")

	snapshot, err := f.dashboardService.Refresh(ctx, ownerID)
	require.NoError(t, err)

	// The anchor step lazily created a default profile.
	require.NotNil(t, snapshot.Profile)
	assert.Equal(t, domain.StatusActive, snapshot.Profile.Status)

	// With no restaurants the menu step is skipped, not failed.
	assert.Empty(t, snapshot.SelectedRestaurantID)
	assert.Empty(t, snapshot.Restaurants)
	assert.Empty(t, snapshot.MenuItems)
	assert.Empty(t, snapshot.Warnings)
	assert.Nil(t, snapshot.Statistics)
}

func TestRefreshSelectsFirstRestaurant(t *testing.T) {
	f := setupDashboard(t)
	ctx := context.Background()
	ownerID := f.registerOwner(t, "owner@example.com")

	first, err := f.restaurantService.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Warung Tengah"}, ownerID)
	require.NoError(t, err)
	_, err = f.restaurantService.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Sate Pak Budi"}, ownerID)
	require.NoError(t, err)

	snapshot, err := f.dashboardService.Refresh(ctx, ownerID)
	require.NoError(t, err)

	require.Len(t, snapshot.Restaurants, 2)
	assert.Equal(t, first.ID, snapshot.SelectedRestaurantID)
}

func TestRefreshPreservesSelectionAcrossRefreshes(t *testing.T) {
	f := setupDashboard(t)
	ctx := context.Background()
	ownerID := f.registerOwner(t, "owner@example.com")

	_, err := f.restaurantService.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Warung Tengah"}, ownerID)
	require.NoError(t, err)
	second, err := f.restaurantService.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Sate Pak Budi"}, ownerID)
	require.NoError(t, err)

	_, err = f.dashboardService.Refresh(ctx, ownerID)
	require.NoError(t, err)

	selected, err := f.dashboardService.SelectRestaurant(ctx, ownerID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, selected.SelectedRestaurantID)

	refreshed, err := f.dashboardService.Refresh(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, refreshed.SelectedRestaurantID)

	// Once the selection no longer belongs to the owner, the refresh falls
	// back to the first remaining restaurant.
	require.NoError(t, f.restaurantService.DeleteRestaurant(ctx, second.ID))
	fallback, err := f.dashboardService.Refresh(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, fallback.Restaurants, 1)
	assert.Equal(t, fallback.Restaurants[0].ID, fallback.SelectedRestaurantID)
}

func TestSelectRestaurantRejectsUnowned(t *testing.T) {
	f := setupDashboard(t)
	ctx := context.Background()
	ownerID := f.registerOwner(t, "owner@example.com")
	otherID := f.registerOwner(t, "other@example.com")

	theirs, err := f.restaurantService.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Theirs"}, otherID)
	require.NoError(t, err)

	_, err = f.dashboardService.Refresh(ctx, ownerID)
	require.NoError(t, err)

	_, err = f.dashboardService.SelectRestaurant(ctx, ownerID, theirs.ID)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestAdminRefreshCarriesStatisticsOnly(t *testing.T) {
	f := setupDashboard(t)
	ctx := context.Background()
	adminID := f.registerOwner(t, "admin@restoboard.app")
	ownerID := f.registerOwner(t, "owner@example.com")

	_, err := f.restaurantService.CreateRestaurant(ctx, domain.CreateRestaurantRequest{Name: "Warung Tengah"}, ownerID)
	require.NoError(t, err)

	snapshot, err := f.dashboardService.Refresh(ctx, adminID)
	require.NoError(t, err)

	assert.Nil(t, snapshot.Profile)
	require.NotNil(t, snapshot.Statistics)
	assert.Equal(t, int64(2), snapshot.Statistics.TotalUsers)
	assert.Equal(t, int64(1), snapshot.Statistics.TotalRestaurants)
	assert.Empty(t, snapshot.Statistics.Error)
}

func TestStatisticsDegradesInsteadOfFailing(t *testing.T) {
	f := setupDashboard(t)
	ctx := context.Background()
	adminID := f.registerOwner(t, "admin@restoboard.app")

	require.NoError(t, f.db.Migrator().DropTable(&entities.Restaurant{}))

	stats := f.dashboardService.Statistics(ctx)
	assert.NotEmpty(t, stats.Error)
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalRestaurants)
	assert.Zero(t, stats.TotalMenuItems)
	assert.Zero(t, stats.TotalFeedback)

	// The admin refresh surfaces the degradation as a warning, never an error.
	snapshot, err := f.dashboardService.Refresh(ctx, adminID)
	require.NoError(t, err)
	require.NotNil(t, snapshot.Statistics)
	assert.NotEmpty(t, snapshot.Statistics.Error)
	assert.NotEmpty(t, snapshot.Warnings)
}

func TestRefreshDemotedAdminGetsOwnerSnapshot(t *testing.T) {
	f := setupDashboard(t)
	ctx := context.Background()
	adminID := f.registerOwner(t, "admin@restoboard.app")

	snapshot, err := f.dashboardService.Refresh(ctx, adminID)
	require.NoError(t, err)
	require.NotNil(t, snapshot.Statistics)
	assert.Nil(t, snapshot.Profile)

	// The stored email no longer matches the configured admin email; the very
	// next refresh must serve the owner view, token claims notwithstanding.
	require.NoError(t, f.db.Model(&entities.User{}).
		Where("id = ?", adminID).
		Update("email", "former-admin@example.com").Error)

	snapshot, err = f.dashboardService.Refresh(ctx, adminID)
	require.NoError(t, err)
	assert.Nil(t, snapshot.Statistics)
	require.NotNil(t, snapshot.Profile)
}

func TestRefreshSoftFailsBelowTheAnchor(t *testing.T) {
	f := setupDashboard(t)
	ctx := context.Background()
	ownerID := f.registerOwner(t, "owner@example.com")

	require.NoError(t, f.db.Migrator().DropTable(&entities.Feedback{}))

	snapshot, err := f.dashboardService.Refresh(ctx, ownerID)
	require.NoError(t, err)
	require.NotNil(t, snapshot.Profile)
	assert.Contains(t, snapshot.Warnings, "failed to load feedback")
}

func TestStaleRefreshDoesNotOverwriteNewer(t *testing.T) {
	f := setupDashboard(t)
	service := f.dashboardService.(*dashboardService)

	state, staleToken := service.issueToken("owner-1")
	_, freshToken := service.issueToken("owner-1")

	fresh := domain.DashboardSnapshot{SelectedRestaurantID: "fresh"}
	committed := service.commit(state, freshToken, fresh)
	assert.Equal(t, "fresh", committed.SelectedRestaurantID)

	// The stale commit is discarded; the newer snapshot is returned instead.
	stale := domain.DashboardSnapshot{SelectedRestaurantID: "stale"}
	committed = service.commit(state, staleToken, stale)
	assert.Equal(t, "fresh", committed.SelectedRestaurantID)
}
