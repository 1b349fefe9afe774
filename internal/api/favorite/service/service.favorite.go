// Package favoritesvc - service video yêu thích.
package favoritesvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "movu_api/internal/api/base/service"
	models "movu_api/internal/api/favorite/models"
	"movu_api/internal/common"
	"movu_api/internal/global"
)

// FavoriteService là cấu trúc chứa các phương thức liên quan đến video yêu thích
type FavoriteService struct {
	basesvc.BaseServiceMongo[models.Favorite]
}

// NewFavoriteService tạo mới FavoriteService với collection từ registry
func NewFavoriteService() (*FavoriteService, error) {
	favoriteCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Favorites)
	if !exist {
		return nil, fmt.Errorf("failed to get favorites collection: %v", common.ErrNotFound)
	}

	return &FavoriteService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Favorite](favoriteCollection),
	}, nil
}

// NewFavoriteServiceWithBase tạo FavoriteService với base service được inject (dùng cho test)
func NewFavoriteServiceWithBase(base basesvc.BaseServiceMongo[models.Favorite]) *FavoriteService {
	return &FavoriteService{BaseServiceMongo: base}
}

// Add đánh dấu một video là yêu thích.
// Một thao tác InsertOne duy nhất: cặp (userId, videoId) đã tồn tại bị unique
// index chặn và trả về lỗi conflict, không cần find trước.
func (s *FavoriteService) Add(ctx context.Context, userID primitive.ObjectID, videoID string, videoData bson.M) (models.Favorite, error) {
	favorite := models.Favorite{
		UserID:    userID,
		VideoID:   videoID,
		VideoData: videoData,
	}

	created, err := s.InsertOne(ctx, favorite)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return models.Favorite{}, common.NewError(
				common.ErrCodeDatabaseQuery,
				"Video đã có trong danh sách yêu thích",
				common.StatusConflict,
				err,
			)
		}
		return models.Favorite{}, err
	}

	return created, nil
}

// Remove bỏ đánh dấu yêu thích theo cặp (userId, videoId), trả về document đã xóa.
// Không tìm thấy trả về lỗi NotFound.
func (s *FavoriteService) Remove(ctx context.Context, userID primitive.ObjectID, videoID string) (models.Favorite, error) {
	return s.FindOneAndDelete(ctx, bson.M{"userId": userID, "videoId": videoID}, nil)
}

// IsFavorite kiểm tra một video có trong danh sách yêu thích của người dùng không
func (s *FavoriteService) IsFavorite(ctx context.Context, userID primitive.ObjectID, videoID string) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"userId": userID, "videoId": videoID})
}

// ForUser lấy danh sách video yêu thích của một người dùng
func (s *FavoriteService) ForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	favorites, err := s.Find(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return favorites, nil
}
