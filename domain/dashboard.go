package domain

var (
	MessageSuccessGetDashboard  = "dashboard retrieved successfully"
	MessageSuccessGetStatistics = "statistics retrieved successfully"

	MessageFailedGetDashboard  = "failed to load dashboard, try again later"
	MessageFailedGetStatistics = "failed to retrieve statistics"
)

type (
	// DashboardSnapshot is the merged state served to the owner dashboard.
	// Warnings carries soft-failure notes from fetch steps that were skipped
	// or came back empty because of an error; the data alongside them is the
	// best available, not necessarily complete.
	DashboardSnapshot struct {
		Profile              *UserProfileResponse `json:"profile,omitempty"`
		Restaurants          []RestaurantResponse `json:"restaurants"`
		SelectedRestaurantID string               `json:"selected_restaurant_id,omitempty"`
		MenuItems            []MenuItemResponse   `json:"menu_items"`
		Feedback             []FeedbackResponse   `json:"feedback"`
		Statistics           *AdminStatistics     `json:"statistics,omitempty"`
		Warnings             []string             `json:"warnings,omitempty"`
	}

	// AdminStatistics degrades to zero values with Error set instead of
	// failing the whole admin dashboard.
	AdminStatistics struct {
		TotalUsers       int64  `json:"total_users"`
		TotalRestaurants int64  `json:"total_restaurants"`
		TotalMenuItems   int64  `json:"total_menu_items"`
		TotalFeedback    int64  `json:"total_feedback"`
		Error            string `json:"error,omitempty"`
	}

	SelectRestaurantRequest struct {
		RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
	}
)
