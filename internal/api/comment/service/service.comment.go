// Package commentsvc - service bình luận video.
package commentsvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "movu_api/internal/api/base/service"
	models "movu_api/internal/api/comment/models"
	"movu_api/internal/common"
	"movu_api/internal/global"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận video
type CommentService struct {
	basesvc.BaseServiceMongo[models.Comment]
}

// NewCommentService tạo mới CommentService với collection từ registry
func NewCommentService() (*CommentService, error) {
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Comment](commentCollection),
	}, nil
}

// NewCommentServiceWithBase tạo CommentService với base service được inject (dùng cho test)
func NewCommentServiceWithBase(base basesvc.BaseServiceMongo[models.Comment]) *CommentService {
	return &CommentService{BaseServiceMongo: base}
}

// Add thêm một bình luận mới. Nội dung được trim và không được rỗng.
func (s *CommentService) Add(ctx context.Context, userID primitive.ObjectID, videoID, text string) (models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Comment{}, common.NewError(
			common.ErrCodeValidationInput,
			"Nội dung bình luận không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}

	return s.InsertOne(ctx, models.Comment{
		UserID:  userID,
		VideoID: videoID,
		Text:    text,
	})
}

// ByVideo lấy danh sách bình luận của một video
func (s *CommentService) ByVideo(ctx context.Context, videoID string) ([]models.Comment, error) {
	comments, err := s.Find(ctx, bson.M{"videoId": videoID}, nil)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// ByUser lấy danh sách bình luận của một người dùng
func (s *CommentService) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Comment, error) {
	comments, err := s.Find(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// requireOwner load bình luận và kiểm tra người yêu cầu là chủ sở hữu.
// Bình luận không tồn tại trả về NotFound; sai chủ sở hữu trả về 403.
func (s *CommentService) requireOwner(ctx context.Context, commentID, userID primitive.ObjectID) (models.Comment, error) {
	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return models.Comment{}, err
	}
	if comment.UserID != userID {
		return models.Comment{}, common.ErrNotResourceOwner
	}
	return comment, nil
}

// UpdateText sửa nội dung một bình luận, chỉ chủ bình luận mới sửa được
func (s *CommentService) UpdateText(ctx context.Context, commentID, userID primitive.ObjectID, text string) (models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Comment{}, common.NewError(
			common.ErrCodeValidationInput,
			"Nội dung bình luận không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}

	if _, err := s.requireOwner(ctx, commentID, userID); err != nil {
		return models.Comment{}, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"text": text},
	}
	return s.UpdateById(ctx, commentID, updateData)
}

// Delete xóa một bình luận, chỉ chủ bình luận mới xóa được. Trả về document đã xóa.
func (s *CommentService) Delete(ctx context.Context, commentID, userID primitive.ObjectID) (models.Comment, error) {
	if _, err := s.requireOwner(ctx, commentID, userID); err != nil {
		return models.Comment{}, err
	}
	return s.DeleteById(ctx, commentID)
}
