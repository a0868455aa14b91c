package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restoboard/domain"
	"restoboard/entities"
	"restoboard/internal/utils/mailing"
	"restoboard/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		DeriveRole(email string) string
		GetCurrentRole(ctx context.Context, userID string) (string, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error

		GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserProfileResponse, error)

		GetAllUsers(ctx context.Context) ([]domain.AdminUserResponse, error)
		DeleteUserProfile(ctx context.Context, userID string) error
		CountUsers(ctx context.Context) (int64, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		adminEmail     string
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, adminEmail string) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		adminEmail:     adminEmail,
	}
}

// DeriveRole maps an email to its access tier. The admin email is supplied as
// configuration; the comparison is case-sensitive. An empty email means no
// signed-in principal and yields no role.
func (s *userService) DeriveRole(email string) string {
	if email == "" {
		return ""
	}
	if email == s.adminEmail {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Role:     s.DeriveRole(req.Email),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	// Role is recomputed from the email on every login so a changed admin
	// policy applies without touching stored rows first.
	role := s.DeriveRole(user.Email)
	if user.Role != role {
		user.Role = role
		if err := s.userRepository.UpdateUser(ctx, user); err != nil {
			return domain.LoginResponse{}, err
		}
	}

	return domain.LoginResponse{
		Token: s.jwtService.GenerateToken(user.ID.String(), role),
		Role:  role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		FullName: user.FullName,
		Role:     s.DeriveRole(user.Email),
	}, nil
}

func (s *userService) GetCurrentRole(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}
	return s.DeriveRole(user.Email), nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEmailNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateResetToken(map[string]any{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}, 15*time.Minute)
	if err != nil {
		return err
	}

	return mailing.SendResetPasswordMail(user.Email, token)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateResetToken(req.Token)
	if err != nil {
		return err
	}

	userID := fmt.Sprintf("%v", claims["user_id"])
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

// GetProfile returns the dashboard profile for a user, creating a default one
// on the first read so callers never see a not-found on their own profile.
func (s *userService) GetProfile(ctx context.Context, userID string) (domain.UserProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserProfileResponse{}, domain.ErrParseUUID
	}

	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, err
		}

		profile = &entities.UserProfile{
			ID:     uuid.New(),
			UserID: userUUID,
			Name:   "",
			Status: domain.StatusActive,
		}
		if err := s.userRepository.CreateProfile(ctx, profile); err != nil {
			return domain.UserProfileResponse{}, err
		}
	}

	return profileToResponse(profile), nil
}

// UpdateProfile merges the given fields into the stored profile. A missing
// profile is created instead of reported as not found; the profile is keyed
// by the principal id, so an upsert is always well defined here.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (domain.UserProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserProfileResponse{}, domain.ErrParseUUID
	}

	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfileResponse{}, err
		}
		profile = &entities.UserProfile{
			ID:     uuid.New(),
			UserID: userUUID,
			Status: domain.StatusActive,
		}
		applyProfileUpdate(profile, req)
		if err := s.userRepository.CreateProfile(ctx, profile); err != nil {
			return domain.UserProfileResponse{}, err
		}
		return profileToResponse(profile), nil
	}

	applyProfileUpdate(profile, req)
	if err := s.userRepository.SaveProfile(ctx, profile); err != nil {
		return domain.UserProfileResponse{}, err
	}

	return profileToResponse(profile), nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.AdminUserResponse, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.AdminUserResponse
	for _, user := range users {
		status := ""
		if user.Profile != nil {
			status = user.Profile.Status
		}
		response = append(response, domain.AdminUserResponse{
			ID:        user.ID.String(),
			Email:     user.Email,
			FullName:  user.FullName,
			Role:      s.DeriveRole(user.Email),
			Status:    status,
			CreatedAt: user.CreatedAt,
		})
	}

	return response, nil
}

// DeleteUserProfile removes the profile record only; the account itself and
// its credentials stay intact.
func (s *userService) DeleteUserProfile(ctx context.Context, userID string) error {
	if _, err := s.userRepository.GetProfileByUserID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteProfileByUserID(ctx, userID)
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	return s.userRepository.CountUsers(ctx)
}

func applyProfileUpdate(profile *entities.UserProfile, req domain.UpdateProfileRequest) {
	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Status != "" {
		profile.Status = req.Status
	}
	if req.RestaurantName != "" {
		profile.RestaurantName = req.RestaurantName
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
}

func profileToResponse(profile *entities.UserProfile) domain.UserProfileResponse {
	return domain.UserProfileResponse{
		ID:             profile.ID.String(),
		UserID:         profile.UserID.String(),
		Name:           profile.Name,
		Status:         profile.Status,
		RestaurantName: profile.RestaurantName,
		PhoneNumber:    profile.PhoneNumber,
		Address:        profile.Address,
		Bio:            profile.Bio,
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}
