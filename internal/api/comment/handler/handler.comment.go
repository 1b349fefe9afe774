// Package commenthdl - handler bình luận video.
package commenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "movu_api/internal/api/base/handler"
	commentdto "movu_api/internal/api/comment/dto"
	models "movu_api/internal/api/comment/models"
	commentsvc "movu_api/internal/api/comment/service"
	"movu_api/internal/common"
	"movu_api/internal/utility"
)

// CommentHandler xử lý các request bình luận video
type CommentHandler struct {
	*basehdl.BaseHandler[models.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput]
	commentService *commentsvc.CommentService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}

	return &CommentHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput](commentService),
		commentService: commentService,
	}, nil
}

// parseObjectID kiểm tra và convert một ID dạng hex, trả về lỗi chuẩn khi sai định dạng
func parseObjectID(name, value string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(value) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("%s '%s' không đúng định dạng MongoDB ObjectID", name, value),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(value), nil
}

// HandleAdd thêm một bình luận mới trên video
func (h *CommentHandler) HandleAdd(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input commentdto.CommentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		userID, err := parseObjectID("userId", input.UserID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.Add(c.Context(), userID, input.VideoID, input.Text)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleByVideo lấy danh sách bình luận của một video
func (h *CommentHandler) HandleByVideo(c fiber.Ctx) error {
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

		comments, err := h.commentService.ByVideo(c.Context(), videoID)
		h.HandleResponse(c, comments, err)
		return nil
	})
}

// HandleByUser lấy danh sách bình luận của một người dùng
func (h *CommentHandler) HandleByUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := parseObjectID("userId", c.Params("userId"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comments, err := h.commentService.ByUser(c.Context(), userID)
		h.HandleResponse(c, comments, err)
		return nil
	})
}

// HandleUpdateText sửa nội dung một bình luận, chỉ chủ bình luận mới sửa được
func (h *CommentHandler) HandleUpdateText(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input commentdto.CommentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := parseObjectID("commentId", input.CommentID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		userID, err := parseObjectID("userId", input.UserID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.commentService.UpdateText(c.Context(), commentID, userID, input.Text)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// HandleDelete xóa một bình luận, chỉ chủ bình luận mới xóa được
func (h *CommentHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input commentdto.CommentDeleteInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		commentID, err := parseObjectID("commentId", input.CommentID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		userID, err := parseObjectID("userId", input.UserID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		removed, err := h.commentService.Delete(c.Context(), commentID, userID)
		h.HandleResponse(c, removed, err)
		return nil
	})
}
