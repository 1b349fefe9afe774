// Package ratinghdl - handler đánh giá video.
package ratinghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "movu_api/internal/api/base/handler"
	ratingdto "movu_api/internal/api/rating/dto"
	models "movu_api/internal/api/rating/models"
	ratingsvc "movu_api/internal/api/rating/service"
	"movu_api/internal/common"
	"movu_api/internal/utility"
)

// RatingHandler xử lý các request đánh giá video
type RatingHandler struct {
	*basehdl.BaseHandler[models.Rating, ratingdto.RatingCreateInput, ratingdto.RatingUpdateInput]
	ratingService *ratingsvc.RatingService
}

// NewRatingHandler tạo instance mới của RatingHandler
func NewRatingHandler() (*RatingHandler, error) {
	ratingService, err := ratingsvc.NewRatingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create rating service: %v", err)
	}

	return &RatingHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Rating, ratingdto.RatingCreateInput, ratingdto.RatingUpdateInput](ratingService),
		ratingService: ratingService,
	}, nil
}

// HandleRate ghi nhận đánh giá của người dùng cho một video (upsert theo cặp)
func (h *RatingHandler) HandleRate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input ratingdto.RatingCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if !primitive.IsValidObjectID(input.UserID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("userId '%s' không đúng định dạng MongoDB ObjectID", input.UserID),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		rating, err := h.ratingService.Rate(c.Context(), utility.String2ObjectID(input.UserID), input.VideoID, input.Rating)
		h.HandleResponse(c, rating, err)
		return nil
	})
}

// HandleAverageForVideo trả về điểm trung bình của một video, 0 khi chưa có đánh giá
func (h *RatingHandler) HandleAverageForVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		videoID := c.Params("videoId")
		if videoID == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"videoId không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		average, err := h.ratingService.AverageForVideo(c.Context(), videoID)
		h.HandleResponse(c, fiber.Map{"videoId": videoID, "average": average}, err)
		return nil
	})
}

// HandleForUserAndVideo trả về đánh giá của một người dùng cho một video.
// Chưa có đánh giá trả về data null, không phải lỗi.
func (h *RatingHandler) HandleForUserAndVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := c.Query("userId")
		videoID := c.Query("videoId")
		if userID == "" || videoID == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"userId và videoId là bắt buộc trong query string",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if !primitive.IsValidObjectID(userID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("userId '%s' không đúng định dạng MongoDB ObjectID", userID),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		rating, err := h.ratingService.ForUserAndVideo(c.Context(), utility.String2ObjectID(userID), videoID)
		h.HandleResponse(c, rating, err)
		return nil
	})
}
