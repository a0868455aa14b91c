package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"restoboard/domain"
	"restoboard/pkg/feedback"
	"restoboard/pkg/menu"
	"restoboard/pkg/restaurant"
	"restoboard/pkg/user"
)

const defaultRefreshTimeout = 15 * time.Second

type (
	DashboardService interface {
		Refresh(ctx context.Context, userID string) (domain.DashboardSnapshot, error)
		SelectRestaurant(ctx context.Context, userID string, restaurantID string) (domain.DashboardSnapshot, error)
		Statistics(ctx context.Context) domain.AdminStatistics
	}

	// sessionState tracks the last committed snapshot per user together with
	// the latest issued refresh token. A refresh only commits its result if
	// its token is still the newest, so a slow stale fetch can never
	// overwrite a fresher one.
	sessionState struct {
		latest   uint64
		snapshot domain.DashboardSnapshot
	}

	dashboardService struct {
		userService       user.UserService
		restaurantService restaurant.RestaurantService
		menuService       menu.MenuService
		feedbackService   feedback.FeedbackService

		mu       sync.Mutex
		sessions map[string]*sessionState
		timeout  time.Duration
	}
)

func NewDashboardService(
	userService user.UserService,
	restaurantService restaurant.RestaurantService,
	menuService menu.MenuService,
	feedbackService feedback.FeedbackService,
) DashboardService {
	return &dashboardService{
		userService:       userService,
		restaurantService: restaurantService,
		menuService:       menuService,
		feedbackService:   feedbackService,
		sessions:          make(map[string]*sessionState),
		timeout:           defaultRefreshTimeout,
	}
}

// Refresh re-runs the fetch sequence for the caller and returns the freshest
// committed snapshot. The role is re-derived from the stored account on every
// refresh rather than read from the token claim, so a demotion takes effect
// on the next load. The first step is the anchor: its failure aborts the
// refresh. Later steps fail soft, leaving a warning and the best available
// data.
func (s *dashboardService) Refresh(ctx context.Context, userID string) (domain.DashboardSnapshot, error) {
	state, token := s.issueToken(userID)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	role, err := s.userService.GetCurrentRole(ctx, userID)
	if err != nil {
		return domain.DashboardSnapshot{}, err
	}

	var snapshot domain.DashboardSnapshot
	if role == domain.RoleAdmin {
		snapshot = domain.DashboardSnapshot{}
		stats := s.Statistics(ctx)
		snapshot.Statistics = &stats
		if stats.Error != "" {
			snapshot.Warnings = append(snapshot.Warnings, stats.Error)
		}
	} else {
		snapshot, err = s.buildOwnerSnapshot(ctx, userID, s.selectedRestaurant(state))
		if err != nil {
			return domain.DashboardSnapshot{}, err
		}
	}

	return s.commit(state, token, snapshot), nil
}

// SelectRestaurant changes the selected restaurant and re-fetches only the
// menu items, leaving the rest of the snapshot untouched.
func (s *dashboardService) SelectRestaurant(ctx context.Context, userID string, restaurantID string) (domain.DashboardSnapshot, error) {
	s.mu.Lock()
	state := s.session(userID)
	owned := false
	for _, r := range state.snapshot.Restaurants {
		if r.ID == restaurantID {
			owned = true
			break
		}
	}
	s.mu.Unlock()

	if !owned {
		return domain.DashboardSnapshot{}, domain.ErrRestaurantNotFound
	}

	_, token := s.issueToken(userID)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.menuService.GetMenuItemsByRestaurant(ctx, restaurantID, "", "")
	if err != nil {
		return domain.DashboardSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if state.latest == token {
		state.snapshot.SelectedRestaurantID = restaurantID
		state.snapshot.MenuItems = items
	}
	return state.snapshot, nil
}

// Statistics never fails: on any error it degrades to zero counts with a
// non-empty Error annotation so the admin dashboard still renders.
func (s *dashboardService) Statistics(ctx context.Context) domain.AdminStatistics {
	stats := domain.AdminStatistics{}

	totalUsers, err := s.userService.CountUsers(ctx)
	if err != nil {
		return degradedStatistics(err)
	}
	totalRestaurants, err := s.restaurantService.CountRestaurants(ctx)
	if err != nil {
		return degradedStatistics(err)
	}
	totalMenuItems, err := s.menuService.CountMenuItems(ctx)
	if err != nil {
		return degradedStatistics(err)
	}
	totalFeedback, err := s.feedbackService.CountFeedback(ctx)
	if err != nil {
		return degradedStatistics(err)
	}

	stats.TotalUsers = totalUsers
	stats.TotalRestaurants = totalRestaurants
	stats.TotalMenuItems = totalMenuItems
	stats.TotalFeedback = totalFeedback
	return stats
}

func degradedStatistics(err error) domain.AdminStatistics {
	log.Printf("statistics fetch failed: %v", err)
	return domain.AdminStatistics{Error: "statistics temporarily unavailable"}
}

func (s *dashboardService) buildOwnerSnapshot(ctx context.Context, userID string, previousSelection string) (domain.DashboardSnapshot, error) {
	snapshot := domain.DashboardSnapshot{
		Restaurants: []domain.RestaurantResponse{},
		MenuItems:   []domain.MenuItemResponse{},
		Feedback:    []domain.FeedbackResponse{},
	}

	// Anchor step: without a profile there is nothing to show.
	profile, err := s.userService.GetProfile(ctx, userID)
	if err != nil {
		return domain.DashboardSnapshot{}, err
	}
	snapshot.Profile = &profile

	restaurants, err := s.restaurantService.GetRestaurantsByOwner(ctx, userID)
	if err != nil {
		log.Printf("dashboard: restaurants fetch failed for %s: %v", userID, err)
		snapshot.Warnings = append(snapshot.Warnings, "failed to load restaurants")
	} else {
		snapshot.Restaurants = restaurants
	}

	selected := ""
	for _, r := range snapshot.Restaurants {
		if r.ID == previousSelection {
			selected = previousSelection
			break
		}
	}
	if selected == "" && len(snapshot.Restaurants) > 0 {
		selected = snapshot.Restaurants[0].ID
	}
	snapshot.SelectedRestaurantID = selected

	if selected != "" {
		items, err := s.menuService.GetMenuItemsByRestaurant(ctx, selected, "", "")
		if err != nil {
			log.Printf("dashboard: menu items fetch failed for %s: %v", selected, err)
			snapshot.Warnings = append(snapshot.Warnings, "failed to load menu items")
		} else {
			snapshot.MenuItems = items
		}
	}

	feedbackList, err := s.feedbackService.GetFeedbackByUser(ctx, userID)
	if err != nil {
		log.Printf("dashboard: feedback fetch failed for %s: %v", userID, err)
		snapshot.Warnings = append(snapshot.Warnings, "failed to load feedback")
	} else {
		snapshot.Feedback = feedbackList
	}

	return snapshot, nil
}

func (s *dashboardService) session(userID string) *sessionState {
	state, ok := s.sessions[userID]
	if !ok {
		state = &sessionState{}
		s.sessions[userID] = state
	}
	return state
}

func (s *dashboardService) issueToken(userID string) (*sessionState, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.session(userID)
	state.latest++
	return state, state.latest
}

func (s *dashboardService) selectedRestaurant(state *sessionState) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return state.snapshot.SelectedRestaurantID
}

// commit installs the snapshot only if no newer refresh has been issued in
// the meantime; otherwise the newer committed state is returned.
func (s *dashboardService) commit(state *sessionState, token uint64, snapshot domain.DashboardSnapshot) domain.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state.latest == token {
		state.snapshot = snapshot
		return snapshot
	}
	return state.snapshot
}
