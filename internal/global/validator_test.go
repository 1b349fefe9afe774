package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// referenceInput mô phỏng DTO có khóa ngoại userId tham chiếu collection users
type referenceInput struct {
	UserID string `validate:"exists=users"`
}

func TestExistsSkipsEmptyValue(t *testing.T) {
	InitValidator()

	// Chuỗi rỗng được coi là optional, không query database
	err := Validate.Struct(referenceInput{UserID: ""})
	assert.NoError(t, err)
}

func TestExistsRejectsMalformedObjectID(t *testing.T) {
	InitValidator()

	err := Validate.Struct(referenceInput{UserID: "khong-phai-objectid"})
	assert.Error(t, err)
}

func TestExistsRejectsUnknownCollection(t *testing.T) {
	InitValidator()

	// ObjectID đúng định dạng nhưng collection chưa được đăng ký trong registry
	// thì không thể xác nhận tồn tại, phải từ chối
	err := Validate.Struct(referenceInput{UserID: primitive.NewObjectID().Hex()})
	assert.Error(t, err)
}

func TestNoXSSRejectsScriptPayload(t *testing.T) {
	InitValidator()

	type textInput struct {
		Text string `validate:"no_xss"`
	}

	assert.NoError(t, Validate.Struct(textInput{Text: "video rất hay"}))
	assert.Error(t, Validate.Struct(textInput{Text: "<script>alert(1)</script>"}))
}

func TestStrongPasswordRequiresThreeClasses(t *testing.T) {
	InitValidator()

	type passwordInput struct {
		Password string `validate:"strong_password"`
	}

	assert.NoError(t, Validate.Struct(passwordInput{Password: "Matkhau123"}))
	assert.Error(t, Validate.Struct(passwordInput{Password: "ngan"}))
	assert.Error(t, Validate.Struct(passwordInput{Password: "toanchuthuong"}))
}
