package domain

import (
	"time"
)

var (
	MessageSuccessCreateRestaurant = "restaurant created successfully"
	MessageSuccessUpdateRestaurant = "restaurant updated successfully"
	MessageSuccessDeleteRestaurant = "restaurant deleted successfully"
	MessageSuccessGetRestaurants   = "restaurants retrieved successfully"

	MessageFailedCreateRestaurant = "failed to create restaurant"
	MessageFailedUpdateRestaurant = "failed to update restaurant"
	MessageFailedDeleteRestaurant = "failed to delete restaurant"
	MessageFailedGetRestaurants   = "failed to retrieve restaurants"

	ErrRestaurantNotFound = NewError("restaurant not found")
)

type (
	CreateRestaurantRequest struct {
		Name        string `json:"name" validate:"required"`
		Address     string `json:"address" validate:"omitempty"`
		OwnerID     string `json:"owner_id" validate:"omitempty"`
		OwnerName   string `json:"owner_name" validate:"omitempty"`
		OwnerEmail  string `json:"owner_email" validate:"omitempty,email"`
		Phone       string `json:"phone" validate:"omitempty"`
		Status      string `json:"status" validate:"omitempty,oneof=active pending inactive"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateRestaurantRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Address     string `json:"address" validate:"omitempty"`
		OwnerName   string `json:"owner_name" validate:"omitempty"`
		OwnerEmail  string `json:"owner_email" validate:"omitempty,email"`
		Phone       string `json:"phone" validate:"omitempty"`
		Status      string `json:"status" validate:"omitempty,oneof=active pending inactive"`
		Description string `json:"description" validate:"omitempty"`
	}

	RestaurantResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Address       string    `json:"address"`
		OwnerID       string    `json:"owner_id"`
		OwnerName     string    `json:"owner_name"`
		OwnerEmail    string    `json:"owner_email"`
		Phone         string    `json:"phone"`
		Status        string    `json:"status"`
		Description   string    `json:"description"`
		MenuItemCount int64     `json:"menu_item_count"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}
)
