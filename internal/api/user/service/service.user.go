// Package usersvc - service người dùng (User).
package usersvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "movu_api/internal/api/base/service"
	userdto "movu_api/internal/api/user/dto"
	models "movu_api/internal/api/user/models"
	"movu_api/internal/common"
	"movu_api/internal/global"
	"movu_api/internal/mailer"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	basesvc.BaseServiceMongo[models.User]
	mailer      mailer.Mailer
	frontendURL string
}

// NewUserService tạo mới UserService với collection từ registry
func NewUserService(m mailer.Mailer, frontendURL string) (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.User](userCollection),
		mailer:           m,
		frontendURL:      frontendURL,
	}, nil
}

// NewUserServiceWithBase tạo UserService với base service được inject (dùng cho test)
func NewUserServiceWithBase(base basesvc.BaseServiceMongo[models.User], m mailer.Mailer, frontendURL string) *UserService {
	return &UserService{
		BaseServiceMongo: base,
		mailer:           m,
		frontendURL:      frontendURL,
	}
}

// Login xác thực người dùng bằng email và mật khẩu.
// Trả về ID của người dùng khi thành công; không tạo session hay token.
func (s *UserService) Login(ctx context.Context, input *userdto.UserLoginInput) (primitive.ObjectID, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return primitive.NilObjectID, common.ErrUserNotFound
		}
		return primitive.NilObjectID, err
	}

	if user.Password != input.Password {
		logrus.WithField("email", input.Email).Warn("Login: Sai mật khẩu")
		return primitive.NilObjectID, common.ErrInvalidCredentials
	}

	return user.ID, nil
}
