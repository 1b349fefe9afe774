// Package userhdl - handler người dùng: CRUD, đăng nhập và đặt lại mật khẩu.
package userhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "movu_api/internal/api/base/handler"
	userdto "movu_api/internal/api/user/dto"
	models "movu_api/internal/api/user/models"
	usersvc "movu_api/internal/api/user/service"
	"movu_api/internal/global"
	"movu_api/internal/mailer"
)

// UserHandler xử lý các request quản lý người dùng và xác thực
type UserHandler struct {
	*basehdl.BaseHandler[models.User, userdto.UserCreateInput, userdto.UserUpdateInput]
	userService *usersvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler(m mailer.Mailer) (*UserHandler, error) {
	userService, err := usersvc.NewUserService(m, global.ServerConfig.FrontendURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, userdto.UserCreateInput, userdto.UserUpdateInput](userService),
		userService: userService,
	}, nil
}

// HandleLogin xử lý đăng nhập bằng email và mật khẩu.
// Thành công trả về userId; không tạo session hay token.
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		userID, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"userId": userID.Hex()}, nil)
		return nil
	})
}

// HandleRequestReset xử lý yêu cầu đặt lại mật khẩu: sinh token và gửi email
func (h *UserHandler) HandleRequestReset(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.ResetPasswordRequestInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.userService.RequestReset(c.Context(), input.Email)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleConfirmReset xác nhận đặt lại mật khẩu bằng token
func (h *UserHandler) HandleConfirmReset(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input userdto.ResetPasswordConfirmInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.userService.ConfirmReset(c.Context(), input.Token, input.NewPassword)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
