package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	"restoboard/domain"
	"restoboard/entities"
	"restoboard/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FeedbackService interface {
		CreateFeedback(ctx context.Context, req domain.CreateFeedbackRequest, userID string) (domain.FeedbackResponse, error)
		GetFeedbackByUser(ctx context.Context, userID string) ([]domain.FeedbackResponse, error)
		GetAllFeedback(ctx context.Context) ([]domain.FeedbackResponse, error)
		RespondFeedback(ctx context.Context, id string, req domain.RespondFeedbackRequest) (domain.FeedbackResponse, error)
		CountFeedback(ctx context.Context) (int64, error)
	}

	feedbackService struct {
		feedbackRepository FeedbackRepository
		userRepository     user.UserRepository
	}
)

func NewFeedbackService(feedbackRepository FeedbackRepository, userRepository user.UserRepository) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		userRepository:     userRepository,
	}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, req domain.CreateFeedbackRequest, userID string) (domain.FeedbackResponse, error) {
	if strings.TrimSpace(req.FeedbackText) == "" {
		return domain.FeedbackResponse{}, domain.ErrEmptyFeedbackText
	}
	if req.Rating < 1 || req.Rating > 5 {
		return domain.FeedbackResponse{}, domain.ErrInvalidRating
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FeedbackResponse{}, domain.ErrParseUUID
	}

	submitter, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FeedbackResponse{}, domain.ErrUserNotFound
		}
		return domain.FeedbackResponse{}, err
	}

	feedback := &entities.Feedback{
		ID:           uuid.New(),
		UserID:       userUUID,
		UserName:     submitter.FullName,
		UserEmail:    submitter.Email,
		FeedbackType: req.FeedbackType,
		FeedbackText: req.FeedbackText,
		Rating:       req.Rating,
		Status:       domain.FeedbackStatusPending,
	}

	if err := s.feedbackRepository.CreateFeedback(ctx, feedback); err != nil {
		return domain.FeedbackResponse{}, err
	}

	return toResponse(feedback), nil
}

func (s *feedbackService) GetFeedbackByUser(ctx context.Context, userID string) ([]domain.FeedbackResponse, error) {
	feedback, err := s.feedbackRepository.GetFeedbackByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		response = append(response, toResponse(f))
	}
	return response, nil
}

func (s *feedbackService) GetAllFeedback(ctx context.Context) ([]domain.FeedbackResponse, error) {
	feedback, err := s.feedbackRepository.GetAllFeedback(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		response = append(response, toResponse(f))
	}
	return response, nil
}

// RespondFeedback advances the status and, when moving to responded, records
// the response body and time. Backward transitions are rejected.
func (s *feedbackService) RespondFeedback(ctx context.Context, id string, req domain.RespondFeedbackRequest) (domain.FeedbackResponse, error) {
	feedback, err := s.feedbackRepository.GetFeedbackByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FeedbackResponse{}, domain.ErrFeedbackNotFound
		}
		return domain.FeedbackResponse{}, err
	}

	if err := CanTransition(feedback.Status, req.Status); err != nil {
		return domain.FeedbackResponse{}, err
	}

	feedback.Status = req.Status
	if req.Status == domain.FeedbackStatusResponded {
		now := time.Now()
		feedback.Response = req.Response
		feedback.RespondedAt = &now
	}

	if err := s.feedbackRepository.UpdateFeedback(ctx, feedback); err != nil {
		return domain.FeedbackResponse{}, err
	}

	return toResponse(feedback), nil
}

func (s *feedbackService) CountFeedback(ctx context.Context) (int64, error) {
	return s.feedbackRepository.CountFeedback(ctx)
}

func toResponse(feedback *entities.Feedback) domain.FeedbackResponse {
	return domain.FeedbackResponse{
		ID:           feedback.ID.String(),
		UserID:       feedback.UserID.String(),
		UserName:     feedback.UserName,
		UserEmail:    feedback.UserEmail,
		FeedbackType: feedback.FeedbackType,
		FeedbackText: feedback.FeedbackText,
		Rating:       feedback.Rating,
		Status:       feedback.Status,
		Response:     feedback.Response,
		RespondedAt:  feedback.RespondedAt,
		CreatedAt:    feedback.CreatedAt,
	}
}
