package feedback

import (
	"context"

	"restoboard/entities"

	"gorm.io/gorm"
)

type (
	FeedbackRepository interface {
		CreateFeedback(ctx context.Context, feedback *entities.Feedback) error
		GetFeedbackByID(ctx context.Context, id string) (*entities.Feedback, error)
		GetFeedbackByUser(ctx context.Context, userID string) ([]*entities.Feedback, error)
		GetAllFeedback(ctx context.Context) ([]*entities.Feedback, error)
		UpdateFeedback(ctx context.Context, feedback *entities.Feedback) error
		CountFeedback(ctx context.Context) (int64, error)
	}

	feedbackRepository struct {
		db *gorm.DB
	}
)

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) GetFeedbackByID(ctx context.Context, id string) (*entities.Feedback, error) {
	var feedback entities.Feedback
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) GetFeedbackByUser(ctx context.Context, userID string) ([]*entities.Feedback, error) {
	var feedback []*entities.Feedback
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *feedbackRepository) GetAllFeedback(ctx context.Context) ([]*entities.Feedback, error) {
	var feedback []*entities.Feedback
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *feedbackRepository) UpdateFeedback(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *feedbackRepository) CountFeedback(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Feedback{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
