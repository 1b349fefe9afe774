package favoritesvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "movu_api/internal/api/base/service"
	models "movu_api/internal/api/favorite/models"
	"movu_api/internal/common"
)

func newTestFavoriteService() *FavoriteService {
	return NewFavoriteServiceWithBase(basesvc.NewBaseServiceMemory[models.Favorite]())
}

func TestAddAndDuplicate(t *testing.T) {
	svc := newTestFavoriteService()
	ctx := context.Background()
	userID := primitive.NewObjectID()
	videoData := bson.M{"title": "Ocean waves", "duration": int64(30)}

	favorite, err := svc.Add(ctx, userID, "857195", videoData)
	require.NoError(t, err)
	assert.Equal(t, "857195", favorite.VideoID)
	assert.NotZero(t, favorite.CreatedAt)

	_, err = svc.Add(ctx, userID, "857195", videoData)
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusConflict, customErr.StatusCode)

	// Người dùng khác vẫn đánh dấu được cùng video
	_, err = svc.Add(ctx, primitive.NewObjectID(), "857195", videoData)
	require.NoError(t, err)
}

func TestRemove(t *testing.T) {
	svc := newTestFavoriteService()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := svc.Add(ctx, userID, "857195", nil)
	require.NoError(t, err)

	removed, err := svc.Remove(ctx, userID, "857195")
	require.NoError(t, err)
	assert.Equal(t, "857195", removed.VideoID)

	_, err = svc.Remove(ctx, userID, "857195")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestIsFavorite(t *testing.T) {
	svc := newTestFavoriteService()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	exists, err := svc.IsFavorite(ctx, userID, "857195")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Add(ctx, userID, "857195", nil)
	require.NoError(t, err)

	exists, err = svc.IsFavorite(ctx, userID, "857195")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestForUser(t *testing.T) {
	svc := newTestFavoriteService()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	favorites, err := svc.ForUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	for _, videoID := range []string{"1", "2", "3"} {
		_, err := svc.Add(ctx, userID, videoID, nil)
		require.NoError(t, err)
	}
	_, err = svc.Add(ctx, primitive.NewObjectID(), "1", nil)
	require.NoError(t, err)

	favorites, err = svc.ForUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, favorites, 3)
	// Giữ thứ tự insert
	assert.Equal(t, "1", favorites[0].VideoID)
	assert.Equal(t, "3", favorites[2].VideoID)
}
