package usersvc

// Luồng đặt lại mật khẩu: token ngẫu nhiên 32 byte (hex) lưu trực tiếp trên
// document user cùng thời điểm hết hạn, hiệu lực đúng 1 giờ. Yêu cầu mới
// ghi đè token cũ. Email được gửi sau khi token đã được lưu; lỗi gửi email
// chỉ được log, không rollback token.

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "movu_api/internal/api/base/service"
	"movu_api/internal/common"
	"movu_api/internal/mailer"
)

// resetTokenTTL là thời gian hiệu lực của token đặt lại mật khẩu
const resetTokenTTL = time.Hour

// generateResetToken sinh token ngẫu nhiên 32 byte, encode hex
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể sinh token đặt lại mật khẩu", common.StatusInternalServerError, err)
	}
	return hex.EncodeToString(buf), nil
}

// RequestReset xử lý yêu cầu đặt lại mật khẩu cho email.
// Trả về lỗi 404 nếu email không tồn tại. Token được lưu trước khi gửi email.
func (s *UserService) RequestReset(ctx context.Context, email string) error {
	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(resetTokenTTL).UnixMilli()

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"resetPasswordToken":   token,
			"resetPasswordExpires": expiresAt,
		},
	}
	if _, err := s.UpdateById(ctx, user.ID, updateData); err != nil {
		return err
	}

	// Gửi email bất đồng bộ: response không chờ và không phụ thuộc kết quả gửi
	go s.sendResetEmail(user.Email, token)

	return nil
}

// sendResetEmail gửi email chứa link đặt lại mật khẩu. Lỗi chỉ được log.
func (s *UserService) sendResetEmail(email, token string) {
	if s.mailer == nil {
		return
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, token)
	body := mailer.ResetPasswordEmailBody(resetURL)

	if err := s.mailer.Send(email, "Đặt lại mật khẩu", body); err != nil {
		logrus.WithFields(logrus.Fields{
			"email": email,
			"error": err.Error(),
		}).Error("RequestReset: Lỗi gửi email đặt lại mật khẩu")
	}
}

// ConfirmReset đặt mật khẩu mới bằng token.
// Một thao tác FindOneAndUpdate duy nhất: filter khớp token và hạn còn hiệu lực,
// set mật khẩu mới và unset cả hai trường token. Không khớp (token sai, đã dùng
// hoặc hết hạn) đều trả về cùng một lỗi để không lộ trạng thái token.
func (s *UserService) ConfirmReset(ctx context.Context, token, newPassword string) error {
	filter := bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": bson.M{"$gt": time.Now().UnixMilli()},
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": newPassword,
		},
		Unset: map[string]interface{}{
			"resetPasswordToken":   "",
			"resetPasswordExpires": "",
		},
	}

	if _, err := s.FindOneAndUpdate(ctx, filter, updateData, nil); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidResetToken
		}
		return err
	}

	return nil
}
