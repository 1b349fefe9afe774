package ratingsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "movu_api/internal/api/base/service"
	models "movu_api/internal/api/rating/models"
)

func newTestRatingService() *RatingService {
	return NewRatingServiceWithBase(basesvc.NewBaseServiceMemory[models.Rating]())
}

func TestRateCreatesAndOverwrites(t *testing.T) {
	svc := newTestRatingService()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	first, err := svc.Rate(ctx, userID, "857195", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Rating)

	second, err := svc.Rate(ctx, userID, "857195", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Rating)
	assert.Equal(t, first.ID, second.ID)

	count, err := svc.CountDocuments(ctx, bson.M{"userId": userID, "videoId": "857195"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRateRejectsOutOfRange(t *testing.T) {
	svc := newTestRatingService()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := svc.Rate(ctx, userID, "857195", 0)
	assert.Error(t, err)

	_, err = svc.Rate(ctx, userID, "857195", 6)
	assert.Error(t, err)
}

func TestAverageForVideo(t *testing.T) {
	svc := newTestRatingService()
	ctx := context.Background()

	avg, err := svc.AverageForVideo(ctx, "857195")
	require.NoError(t, err)
	assert.Equal(t, float64(0), avg)

	for _, rating := range []int{2, 3, 4} {
		_, err := svc.Rate(ctx, primitive.NewObjectID(), "857195", rating)
		require.NoError(t, err)
	}
	// Đánh giá cho video khác không được tính
	_, err = svc.Rate(ctx, primitive.NewObjectID(), "other", 5)
	require.NoError(t, err)

	avg, err = svc.AverageForVideo(ctx, "857195")
	require.NoError(t, err)
	assert.Equal(t, float64(3), avg)
}

func TestForUserAndVideo(t *testing.T) {
	svc := newTestRatingService()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	rating, err := svc.ForUserAndVideo(ctx, userID, "857195")
	require.NoError(t, err)
	assert.Nil(t, rating)

	_, err = svc.Rate(ctx, userID, "857195", 4)
	require.NoError(t, err)

	rating, err = svc.ForUserAndVideo(ctx, userID, "857195")
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 4, rating.Rating)
}
