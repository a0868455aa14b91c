package domain

import (
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateMenuItem = "menu item created successfully"
	MessageSuccessUpdateMenuItem = "menu item updated successfully"
	MessageSuccessDeleteMenuItem = "menu item deleted successfully"
	MessageSuccessGetMenuItems   = "menu items retrieved successfully"
	MessageSuccessUploadItemImage = "menu item image uploaded successfully"

	MessageFailedCreateMenuItem = "failed to create menu item"
	MessageFailedUpdateMenuItem = "failed to update menu item"
	MessageFailedDeleteMenuItem = "failed to delete menu item"
	MessageFailedGetMenuItems   = "failed to retrieve menu items"
	MessageFailedUploadItemImage = "failed to upload menu item image"

	ErrMenuItemNotFound = NewError("menu item not found")
	ErrNegativePrice    = NewError("price must not be negative")
	ErrNegativeCost     = NewError("cost must not be negative")
)

type (
	CreateMenuItemRequest struct {
		RestaurantID    string  `json:"restaurant_id" validate:"required,uuid"`
		Name            string  `json:"name" validate:"required"`
		Category        string  `json:"category" validate:"required"`
		Price           float64 `json:"price" validate:"min=0"`
		Cost            float64 `json:"cost" validate:"min=0"`
		Description     string  `json:"description" validate:"omitempty"`
		Status          string  `json:"status" validate:"omitempty,oneof=active seasonal inactive"`
		Ingredients     string  `json:"ingredients" validate:"omitempty"`
		Allergens       string  `json:"allergens" validate:"omitempty"`
		PrepTimeMinutes int     `json:"prep_time_minutes" validate:"omitempty,min=0"`
		Portion         string  `json:"portion" validate:"omitempty"`
	}

	UpdateMenuItemRequest struct {
		Name            string   `json:"name" validate:"omitempty"`
		Category        string   `json:"category" validate:"omitempty"`
		Price           *float64 `json:"price" validate:"omitempty,min=0"`
		Cost            *float64 `json:"cost" validate:"omitempty,min=0"`
		Description     string   `json:"description" validate:"omitempty"`
		Status          string   `json:"status" validate:"omitempty,oneof=active seasonal inactive"`
		Ingredients     string   `json:"ingredients" validate:"omitempty"`
		Allergens       string   `json:"allergens" validate:"omitempty"`
		PrepTimeMinutes int      `json:"prep_time_minutes" validate:"omitempty,min=0"`
		Portion         string   `json:"portion" validate:"omitempty"`
	}

	UploadItemImageRequest struct {
		MenuItemID string                `json:"menu_item_id" form:"menu_item_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MenuItemResponse struct {
		ID              string    `json:"id"`
		RestaurantID    string    `json:"restaurant_id"`
		Name            string    `json:"name"`
		Category        string    `json:"category"`
		Price           float64   `json:"price"`
		Cost            float64   `json:"cost"`
		Profit          float64   `json:"profit"`
		MarginPercent   int       `json:"margin_percent"`
		Description     string    `json:"description"`
		Status          string    `json:"status"`
		Ingredients     string    `json:"ingredients"`
		Allergens       string    `json:"allergens"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		Portion         string    `json:"portion"`
		ImageURL        string    `json:"image_url,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
