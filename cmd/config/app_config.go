package config

import (
	"os"
	"time"

	"restoboard/internal/api/handlers"
	"restoboard/internal/api/routes"
	"restoboard/internal/middleware"
	"restoboard/internal/utils"
	"restoboard/internal/utils/storage"
	"restoboard/pkg/dashboard"
	"restoboard/pkg/feedback"
	"restoboard/pkg/jwt"
	"restoboard/pkg/menu"
	"restoboard/pkg/restaurant"
	"restoboard/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	feedbackRepository := feedback.NewFeedbackRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, utils.GetConfig("ADMIN_EMAIL"))
	menuService := menu.NewMenuService(menuRepository, restaurantRepository, s3)
	restaurantService := restaurant.NewRestaurantService(restaurantRepository, menuRepository)
	feedbackService := feedback.NewFeedbackService(feedbackRepository, userRepository)
	dashboardService := dashboard.NewDashboardService(userService, restaurantService, menuService, feedbackService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, validator)
	adminHandler := handlers.NewAdminHandler(userService, restaurantService, feedbackService, dashboardService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RestaurantHandler: restaurantHandler,
		MenuHandler:       menuHandler,
		FeedbackHandler:   feedbackHandler,
		DashboardHandler:  dashboardHandler,
		AdminHandler:      adminHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
		UserService:       userService,
	}
	routesConfig.Setup()
	return app, nil
}
