// Package videosvc - service video catalog.
package videosvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "movu_api/internal/api/base/service"
	videodto "movu_api/internal/api/video/dto"
	models "movu_api/internal/api/video/models"
	"movu_api/internal/common"
	"movu_api/internal/global"
)

// VideoService là cấu trúc chứa các phương thức liên quan đến video catalog
type VideoService struct {
	basesvc.BaseServiceMongo[models.Video]
	publicBaseURL string
}

// NewVideoService tạo mới VideoService với collection từ registry
func NewVideoService(publicBaseURL string) (*VideoService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.Video](videoCollection),
		publicBaseURL:    publicBaseURL,
	}, nil
}

// NewVideoServiceWithBase tạo VideoService với base service được inject (dùng cho test)
func NewVideoServiceWithBase(base basesvc.BaseServiceMongo[models.Video], publicBaseURL string) *VideoService {
	return &VideoService{
		BaseServiceMongo: base,
		publicBaseURL:    publicBaseURL,
	}
}

// subtitleURL dựng URL phụ đề theo pexelsId và ngôn ngữ
func (s *VideoService) subtitleURL(pexelsID, lang string) string {
	return fmt.Sprintf("%s/subtitles/%s_%s.vtt", s.publicBaseURL, pexelsID, lang)
}

// Create thêm một video mới vào catalog, derive URL phụ đề es/en từ pexelsId.
// PexelsId đã tồn tại trả về lỗi conflict nhờ unique index.
func (s *VideoService) Create(ctx context.Context, input *videodto.VideoCreateInput) (models.Video, error) {
	video := models.Video{
		PexelsID:      input.PexelsID,
		Title:         input.Title,
		VideoURL:      input.VideoURL,
		SubtitleEsURL: s.subtitleURL(input.PexelsID, "es"),
		SubtitleEnURL: s.subtitleURL(input.PexelsID, "en"),
	}

	created, err := s.InsertOne(ctx, video)
	if err != nil {
		if errors.Is(err, common.ErrMongoDuplicate) {
			return models.Video{}, common.NewError(
				common.ErrCodeDatabaseQuery,
				fmt.Sprintf("Video với pexelsId '%s' đã tồn tại", input.PexelsID),
				common.StatusConflict,
				err,
			)
		}
		return models.Video{}, err
	}

	return created, nil
}

// FindByPexelsID tìm một video theo pexelsId
func (s *VideoService) FindByPexelsID(ctx context.Context, pexelsID string) (models.Video, error) {
	return s.FindOne(ctx, bson.M{"pexelsId": pexelsID}, nil)
}
