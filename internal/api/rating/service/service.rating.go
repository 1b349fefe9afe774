// Package ratingsvc - service đánh giá video.
package ratingsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "movu_api/internal/api/base/service"
	models "movu_api/internal/api/rating/models"
	"movu_api/internal/common"
	"movu_api/internal/global"
)

// RatingService là cấu trúc chứa các phương thức liên quan đến đánh giá video
type RatingService struct {
	basesvc.BaseServiceMongo[models.Rating]
}

// NewRatingService tạo mới RatingService với collection từ registry
func NewRatingService() (*RatingService, error) {
	ratingCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Ratings)
	if !exist {
		return nil, fmt.Errorf("failed to get ratings collection: %v", common.ErrNotFound)
	}

	return &RatingService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Rating](ratingCollection),
	}, nil
}

// NewRatingServiceWithBase tạo RatingService với base service được inject (dùng cho test)
func NewRatingServiceWithBase(base basesvc.BaseServiceMongo[models.Rating]) *RatingService {
	return &RatingService{BaseServiceMongo: base}
}

// Rate ghi nhận đánh giá của một người dùng cho một video.
// Một thao tác upsert duy nhất trên cặp (userId, videoId): đánh giá cũ được
// ghi đè, chưa có thì tạo mới. Không có cửa sổ race giữa find và create.
func (s *RatingService) Rate(ctx context.Context, userID primitive.ObjectID, videoID string, rating int) (models.Rating, error) {
	if rating < 1 || rating > 5 {
		return models.Rating{}, common.NewError(
			common.ErrCodeValidationInput,
			"Điểm đánh giá phải nằm trong khoảng 1 đến 5",
			common.StatusBadRequest,
			nil,
		)
	}

	filter := bson.M{"userId": userID, "videoId": videoID}
	return s.Upsert(ctx, filter, bson.M{"rating": rating})
}

// AverageForVideo tính điểm trung bình của một video, trả về 0 khi chưa có đánh giá
func (s *RatingService) AverageForVideo(ctx context.Context, videoID string) (float64, error) {
	return s.AverageOfField(ctx, "rating", bson.M{"videoId": videoID})
}

// ForUserAndVideo lấy đánh giá của một người dùng cho một video.
// Trả về nil (không phải lỗi) khi người dùng chưa đánh giá video.
func (s *RatingService) ForUserAndVideo(ctx context.Context, userID primitive.ObjectID, videoID string) (*models.Rating, error) {
	rating, err := s.FindOne(ctx, bson.M{"userId": userID, "videoId": videoID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}
