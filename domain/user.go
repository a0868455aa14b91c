package domain

import (
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login success"
	MessageSuccessMe             = "user retrieved successfully"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessDeleteProfile  = "user profile deleted successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedMe             = "failed to retrieve user"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedGetUsers       = "failed to retrieve users"
	MessageFailedDeleteProfile  = "failed to delete user profile"

	ErrEmailAlreadyExists = NewError("email already registered")
	ErrEmailNotFound      = NewError("email not found")
	ErrUserNotFound       = NewError("user not found")
	ErrInvalidCredentials = NewError("invalid email or password")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		FullName string `json:"full_name" validate:"required"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	MeResponse struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UserProfileResponse struct {
		ID             string    `json:"id"`
		UserID         string    `json:"user_id"`
		Name           string    `json:"name"`
		Status         string    `json:"status"`
		RestaurantName string    `json:"restaurant_name"`
		PhoneNumber    string    `json:"phone_number"`
		Address        string    `json:"address"`
		Bio            string    `json:"bio"`
		CreatedAt      time.Time `json:"created_at"`
		UpdatedAt      time.Time `json:"updated_at"`
	}

	UpdateProfileRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
		RestaurantName string `json:"restaurant_name" validate:"omitempty"`
		PhoneNumber    string `json:"phone_number" validate:"omitempty"`
		Address        string `json:"address" validate:"omitempty"`
		Bio            string `json:"bio" validate:"omitempty"`
	}

	AdminUserResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		FullName  string    `json:"full_name"`
		Role      string    `json:"role"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
)
