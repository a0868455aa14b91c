package feedback

import (
	"context"
	"testing"

	"restoboard/domain"
	"restoboard/entities"
	"restoboard/pkg/user"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupFeedbackService(t *testing.T) (FeedbackService, FeedbackRepository, *entities.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.UserProfile{}, &entities.Feedback{}))

	userRepo := user.NewUserRepository(db)
	submitter := &entities.User{
		ID:       uuid.New(),
		Email:    "owner@example.com",
		FullName: "Restaurant Owner",
		Role:     domain.RoleUser,
	}
	require.NoError(t, userRepo.CreateUser(context.Background(), submitter))

	feedbackRepo := NewFeedbackRepository(db)
	return NewFeedbackService(feedbackRepo, userRepo), feedbackRepo, submitter
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		ok       bool
	}{
		{domain.FeedbackStatusPending, domain.FeedbackStatusReviewed, true},
		{domain.FeedbackStatusPending, domain.FeedbackStatusResponded, true},
		{domain.FeedbackStatusReviewed, domain.FeedbackStatusResponded, true},
		{domain.FeedbackStatusReviewed, domain.FeedbackStatusPending, false},
		{domain.FeedbackStatusResponded, domain.FeedbackStatusReviewed, false},
		{domain.FeedbackStatusPending, domain.FeedbackStatusPending, false},
		{"unknown", domain.FeedbackStatusReviewed, false},
		{domain.FeedbackStatusPending, "unknown", false},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidStatusChange, "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestCreateFeedbackRejectsBlankText(t *testing.T) {
	service, repo, submitter := setupFeedbackService(t)
	ctx := context.Background()

	_, err := service.CreateFeedback(ctx, domain.CreateFeedbackRequest{
		FeedbackType: "suggestion",
		FeedbackText: "   \t ",
		Rating:       3,
	}, submitter.ID.String())
	assert.ErrorIs(t, err, domain.ErrEmptyFeedbackText)

	// Nothing was persisted.
	all, err := repo.GetAllFeedback(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 0)
}

func TestCreateFeedbackRejectsOutOfRangeRating(t *testing.T) {
	service, _, submitter := setupFeedbackService(t)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		_, err := service.CreateFeedback(ctx, domain.CreateFeedbackRequest{
			FeedbackType: "suggestion",
			FeedbackText: "More vegetarian options please",
			Rating:       rating,
		}, submitter.ID.String())
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	}
}

func TestCreateFeedbackStartsPendingWithSubmitterIdentity(t *testing.T) {
	service, _, submitter := setupFeedbackService(t)
	ctx := context.Background()

	res, err := service.CreateFeedback(ctx, domain.CreateFeedbackRequest{
		FeedbackType: "suggestion",
		FeedbackText: "More vegetarian options please",
		Rating:       3,
	}, submitter.ID.String())
	require.NoError(t, err)

	assert.Equal(t, domain.FeedbackStatusPending, res.Status)
	assert.Equal(t, submitter.FullName, res.UserName)
	assert.Equal(t, submitter.Email, res.UserEmail)
	assert.Nil(t, res.RespondedAt)
}

func TestCreateFeedbackUnknownSubmitter(t *testing.T) {
	service, _, _ := setupFeedbackService(t)
	ctx := context.Background()

	_, err := service.CreateFeedback(ctx, domain.CreateFeedbackRequest{
		FeedbackType: "complaint",
		FeedbackText: "Cold food",
		Rating:       1,
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRespondFeedbackAdvancesStatus(t *testing.T) {
	service, _, submitter := setupFeedbackService(t)
	ctx := context.Background()

	created, err := service.CreateFeedback(ctx, domain.CreateFeedbackRequest{
		FeedbackType: "complaint",
		FeedbackText: "Cold food",
		Rating:       2,
	}, submitter.ID.String())
	require.NoError(t, err)

	reviewed, err := service.RespondFeedback(ctx, created.ID, domain.RespondFeedbackRequest{
		Status: domain.FeedbackStatusReviewed,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStatusReviewed, reviewed.Status)
	assert.Nil(t, reviewed.RespondedAt)

	responded, err := service.RespondFeedback(ctx, created.ID, domain.RespondFeedbackRequest{
		Status:   domain.FeedbackStatusResponded,
		Response: "We have spoken to the kitchen, sorry about that.",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackStatusResponded, responded.Status)
	assert.Equal(t, "We have spoken to the kitchen, sorry about that.", responded.Response)
	require.NotNil(t, responded.RespondedAt)

	// No going back once responded.
	_, err = service.RespondFeedback(ctx, created.ID, domain.RespondFeedbackRequest{
		Status: domain.FeedbackStatusReviewed,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatusChange)
}

func TestRespondFeedbackNotFound(t *testing.T) {
	service, _, _ := setupFeedbackService(t)
	ctx := context.Background()

	_, err := service.RespondFeedback(ctx, uuid.NewString(), domain.RespondFeedbackRequest{
		Status: domain.FeedbackStatusReviewed,
	})
	assert.ErrorIs(t, err, domain.ErrFeedbackNotFound)
}

func TestGetFeedbackByUserScopesToSubmitter(t *testing.T) {
	service, repo, submitter := setupFeedbackService(t)
	ctx := context.Background()

	_, err := service.CreateFeedback(ctx, domain.CreateFeedbackRequest{
		FeedbackType: "suggestion",
		FeedbackText: "More vegetarian options please",
		Rating:       4,
	}, submitter.ID.String())
	require.NoError(t, err)

	require.NoError(t, repo.CreateFeedback(ctx, &entities.Feedback{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		FeedbackType: "complaint",
		FeedbackText: "Someone else's note",
		Rating:       1,
		Status:       domain.FeedbackStatusPending,
	}))

	mine, err := service.GetFeedbackByUser(ctx, submitter.ID.String())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "More vegetarian options please", mine[0].FeedbackText)

	all, err := service.GetAllFeedback(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
