// Package favoritehdl - handler video yêu thích.
package favoritehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "movu_api/internal/api/base/handler"
	favoritedto "movu_api/internal/api/favorite/dto"
	models "movu_api/internal/api/favorite/models"
	favoritesvc "movu_api/internal/api/favorite/service"
	"movu_api/internal/common"
	"movu_api/internal/utility"
)

// FavoriteHandler xử lý các request video yêu thích
type FavoriteHandler struct {
	*basehdl.BaseHandler[models.Favorite, favoritedto.FavoriteCreateInput, favoritedto.FavoriteUpdateInput]
	favoriteService *favoritesvc.FavoriteService
}

// NewFavoriteHandler tạo instance mới của FavoriteHandler
func NewFavoriteHandler() (*FavoriteHandler, error) {
	favoriteService, err := favoritesvc.NewFavoriteService()
	if err != nil {
		return nil, fmt.Errorf("failed to create favorite service: %v", err)
	}

	return &FavoriteHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Favorite, favoritedto.FavoriteCreateInput, favoritedto.FavoriteUpdateInput](favoriteService),
		favoriteService: favoriteService,
	}, nil
}

// validUserID kiểm tra và convert userId dạng hex, trả về lỗi chuẩn khi sai định dạng
func validUserID(userID string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(userID) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("userId '%s' không đúng định dạng MongoDB ObjectID", userID),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(userID), nil
}

// HandleAdd đánh dấu một video là yêu thích
func (h *FavoriteHandler) HandleAdd(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input favoritedto.FavoriteCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		userID, err := validUserID(input.UserID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		favorite, err := h.favoriteService.Add(c.Context(), userID, input.VideoID, bson.M(input.VideoData))
		h.HandleResponse(c, favorite, err)
		return nil
	})
}

// HandleRemove bỏ đánh dấu yêu thích theo cặp (userId, videoId)
func (h *FavoriteHandler) HandleRemove(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input favoritedto.FavoriteRemoveInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		userID, err := validUserID(input.UserID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		removed, err := h.favoriteService.Remove(c.Context(), userID, input.VideoID)
		h.HandleResponse(c, removed, err)
		return nil
	})
}

// HandleForUser lấy danh sách video yêu thích của một người dùng
func (h *FavoriteHandler) HandleForUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := validUserID(c.Params("userId"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		favorites, err := h.favoriteService.ForUser(c.Context(), userID)
		h.HandleResponse(c, favorites, err)
		return nil
	})
}

// HandleIsFavorite kiểm tra một video có trong danh sách yêu thích không
func (h *FavoriteHandler) HandleIsFavorite(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userIDStr := c.Query("userId")
		videoID := c.Query("videoId")
		if userIDStr == "" || videoID == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"userId và videoId là bắt buộc trong query string",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		userID, err := validUserID(userIDStr)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		isFavorite, err := h.favoriteService.IsFavorite(c.Context(), userID, videoID)
		h.HandleResponse(c, fiber.Map{"isFavorite": isFavorite}, err)
		return nil
	})
}
