// Package models - model người dùng (User).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng.
// ResetPasswordToken và ResetPasswordExpires chỉ có giá trị khi có một yêu cầu
// đặt lại mật khẩu đang hiệu lực; cả hai được xóa khi đặt lại thành công.
type User struct {
	ID                   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName            string             `json:"firstName" bson:"firstName"`
	LastName             string             `json:"lastName" bson:"lastName"`
	Age                  int                `json:"age" bson:"age"`
	Email                string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password             string             `json:"-" bson:"password,omitempty"`
	ResetPasswordToken   string             `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpires int64              `json:"-" bson:"resetPasswordExpires,omitempty"`
	CreatedAt            int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt            int64              `json:"updatedAt" bson:"updatedAt"`
}
