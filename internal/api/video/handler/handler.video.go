// Package videohdl - handler video catalog.
package videohdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "movu_api/internal/api/base/handler"
	videodto "movu_api/internal/api/video/dto"
	models "movu_api/internal/api/video/models"
	videosvc "movu_api/internal/api/video/service"
	"movu_api/internal/common"
	"movu_api/internal/global"
)

// VideoHandler xử lý các request quản lý video catalog
type VideoHandler struct {
	*basehdl.BaseHandler[models.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput]
	videoService *videosvc.VideoService
}

// NewVideoHandler tạo instance mới của VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := videosvc.NewVideoService(global.ServerConfig.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}

	return &VideoHandler{
		BaseHandler:  basehdl.NewBaseHandler[models.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput](videoService),
		videoService: videoService,
	}, nil
}

// HandleCreate thêm một video mới vào catalog, derive URL phụ đề từ pexelsId
func (h *VideoHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input videodto.VideoCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		video, err := h.videoService.Create(c.Context(), &input)
		h.HandleResponse(c, video, err)
		return nil
	})
}

// HandleFindByPexelsID tìm một video theo pexelsId từ URI params
func (h *VideoHandler) HandleFindByPexelsID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pexelsID := c.Params("pexelsId")
		if pexelsID == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"pexelsId không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		video, err := h.videoService.FindByPexelsID(c.Context(), pexelsID)
		h.HandleResponse(c, video, err)
		return nil
	})
}
