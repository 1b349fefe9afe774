package commentsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "movu_api/internal/api/base/service"
	models "movu_api/internal/api/comment/models"
	"movu_api/internal/common"
)

func newTestCommentService() *CommentService {
	return NewCommentServiceWithBase(basesvc.NewBaseServiceMemory[models.Comment]())
}

func TestAddTrimsText(t *testing.T) {
	svc := newTestCommentService()
	ctx := context.Background()

	comment, err := svc.Add(ctx, primitive.NewObjectID(), "857195", "  Hay quá!  ")
	require.NoError(t, err)
	assert.Equal(t, "Hay quá!", comment.Text)
	assert.NotZero(t, comment.CreatedAt)
}

func TestAddRejectsEmptyText(t *testing.T) {
	svc := newTestCommentService()
	ctx := context.Background()

	_, err := svc.Add(ctx, primitive.NewObjectID(), "857195", "   ")
	assert.Error(t, err)
}

func TestByVideoAndByUser(t *testing.T) {
	svc := newTestCommentService()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := svc.Add(ctx, userID, "857195", "first")
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, "42", "second")
	require.NoError(t, err)
	_, err = svc.Add(ctx, primitive.NewObjectID(), "857195", "third")
	require.NoError(t, err)

	byVideo, err := svc.ByVideo(ctx, "857195")
	require.NoError(t, err)
	assert.Len(t, byVideo, 2)

	byUser, err := svc.ByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	empty, err := svc.ByVideo(ctx, "none")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUpdateTextEnforcesOwnership(t *testing.T) {
	svc := newTestCommentService()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	comment, err := svc.Add(ctx, owner, "857195", "original")
	require.NoError(t, err)

	updated, err := svc.UpdateText(ctx, comment.ID, owner, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	_, err = svc.UpdateText(ctx, comment.ID, primitive.NewObjectID(), "hijack")
	assert.ErrorIs(t, err, common.ErrNotResourceOwner)

	_, err = svc.UpdateText(ctx, primitive.NewObjectID(), owner, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	svc := newTestCommentService()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	comment, err := svc.Add(ctx, owner, "857195", "to delete")
	require.NoError(t, err)

	_, err = svc.Delete(ctx, comment.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, common.ErrNotResourceOwner)

	removed, err := svc.Delete(ctx, comment.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "to delete", removed.Text)

	_, err = svc.Delete(ctx, comment.ID, owner)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
