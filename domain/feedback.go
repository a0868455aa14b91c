package domain

import (
	"time"
)

const (
	FeedbackStatusPending   = "pending"
	FeedbackStatusReviewed  = "reviewed"
	FeedbackStatusResponded = "responded"
)

var (
	MessageSuccessCreateFeedback  = "feedback submitted successfully"
	MessageSuccessGetFeedback     = "feedback retrieved successfully"
	MessageSuccessRespondFeedback = "feedback response saved successfully"

	MessageFailedCreateFeedback  = "failed to submit feedback"
	MessageFailedGetFeedback     = "failed to retrieve feedback"
	MessageFailedRespondFeedback = "failed to respond to feedback"

	ErrFeedbackNotFound    = NewError("feedback not found")
	ErrEmptyFeedbackText   = NewError("feedback text must not be empty")
	ErrInvalidRating       = NewError("rating must be between 1 and 5")
	ErrInvalidStatusChange = NewError("invalid feedback status change")
)

type (
	CreateFeedbackRequest struct {
		FeedbackType string `json:"feedback_type" validate:"required,oneof=feature bug suggestion general"`
		FeedbackText string `json:"feedback_text" validate:"required"`
		Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	}

	RespondFeedbackRequest struct {
		Status   string `json:"status" validate:"required,oneof=reviewed responded"`
		Response string `json:"response" validate:"omitempty"`
	}

	FeedbackResponse struct {
		ID           string     `json:"id"`
		UserID       string     `json:"user_id"`
		UserName     string     `json:"user_name"`
		UserEmail    string     `json:"user_email"`
		FeedbackType string     `json:"feedback_type"`
		FeedbackText string     `json:"feedback_text"`
		Rating       int        `json:"rating"`
		Status       string     `json:"status"`
		Response     string     `json:"response,omitempty"`
		RespondedAt  *time.Time `json:"responded_at,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
	}
)
