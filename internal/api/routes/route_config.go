package routes

import (
	"restoboard/internal/api/handlers"
	"restoboard/internal/middleware"
	"restoboard/pkg/jwt"
	"restoboard/pkg/user"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RestaurantHandler handlers.RestaurantHandler
	MenuHandler       handlers.MenuHandler
	FeedbackHandler   handlers.FeedbackHandler
	DashboardHandler  handlers.DashboardHandler
	AdminHandler      handlers.AdminHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
	UserService       user.UserService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Restaurants()
	c.MenuItems()
	c.Feedback()
	c.Dashboard()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetProfile)
		user.Patch("/profile", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/v1/restaurants", c.Middleware.AuthMiddleware(c.JWTService))
	restaurants.Post("", c.RestaurantHandler.CreateRestaurant)
	restaurants.Get("", c.RestaurantHandler.GetMyRestaurants)
}

func (c *Config) MenuItems() {
	menuItems := c.App.Group("/api/v1/menu-items", c.Middleware.AuthMiddleware(c.JWTService))
	menuItems.Post("", c.MenuHandler.CreateMenuItem)
	menuItems.Get("/restaurant/:restaurantId", c.MenuHandler.GetMenuItems)
	menuItems.Get("/:id", c.MenuHandler.GetMenuItemDetails)
	menuItems.Put("/:id", c.MenuHandler.UpdateMenuItem)
	menuItems.Delete("/:id", c.MenuHandler.DeleteMenuItem)
	menuItems.Post("/image", c.MenuHandler.UploadItemImage)
}

func (c *Config) Feedback() {
	feedback := c.App.Group("/api/v1/feedback", c.Middleware.AuthMiddleware(c.JWTService))
	feedback.Post("", c.FeedbackHandler.CreateFeedback)
	feedback.Get("", c.FeedbackHandler.GetMyFeedback)
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/v1/dashboard", c.Middleware.AuthMiddleware(c.JWTService))
	dashboard.Get("", c.DashboardHandler.GetDashboard)
	dashboard.Post("/select-restaurant", c.DashboardHandler.SelectRestaurant)
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(c.UserService),
	)
	admin.Get("/users", c.AdminHandler.GetUsers)
	admin.Delete("/users/:id/profile", c.AdminHandler.DeleteUserProfile)
	admin.Get("/restaurants", c.AdminHandler.GetRestaurants)
	admin.Put("/restaurants/:id", c.AdminHandler.UpdateRestaurant)
	admin.Delete("/restaurants/:id", c.AdminHandler.DeleteRestaurant)
	admin.Get("/feedback", c.AdminHandler.GetAllFeedback)
	admin.Patch("/feedback/:id", c.AdminHandler.RespondFeedback)
	admin.Get("/statistics", c.AdminHandler.GetStatistics)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
