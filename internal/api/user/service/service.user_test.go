package usersvc

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "movu_api/internal/api/base/service"
	userdto "movu_api/internal/api/user/dto"
	models "movu_api/internal/api/user/models"
	"movu_api/internal/common"
)

// fakeMailer ghi lại các email đã gửi, có thể cấu hình trả về lỗi
type fakeMailer struct {
	mu      sync.Mutex
	sent    []string
	failErr error
	done    chan struct{}
}

func newFakeMailer(failErr error) *fakeMailer {
	return &fakeMailer{failErr: failErr, done: make(chan struct{}, 8)}
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	m.sent = append(m.sent, to)
	m.mu.Unlock()
	m.done <- struct{}{}
	return m.failErr
}

func (m *fakeMailer) waitForSend(t *testing.T) {
	t.Helper()
	select {
	case <-m.done:
	case <-time.After(2 * time.Second):
		t.Fatal("mailer không được gọi trong thời gian chờ")
	}
}

func newTestUserService(m *fakeMailer) (*UserService, basesvc.BaseServiceMongo[models.User]) {
	store := basesvc.NewBaseServiceMemory[models.User]()
	return NewUserServiceWithBase(store, m, "http://localhost:3000"), store
}

func createTestUser(t *testing.T, store basesvc.BaseServiceMongo[models.User], email, password string) models.User {
	t.Helper()
	user, err := store.InsertOne(context.Background(), models.User{
		FirstName: "Lan",
		LastName:  "Pham",
		Age:       25,
		Email:     email,
		Password:  password,
	})
	require.NoError(t, err)
	return user
}

func TestLoginSuccess(t *testing.T) {
	svc, store := newTestUserService(newFakeMailer(nil))
	user := createTestUser(t, store, "lan@movu.app", "Secret123")

	id, err := svc.Login(context.Background(), &userdto.UserLoginInput{
		Email:    "lan@movu.app",
		Password: "Secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, store := newTestUserService(newFakeMailer(nil))
	createTestUser(t, store, "lan@movu.app", "Secret123")

	_, err := svc.Login(context.Background(), &userdto.UserLoginInput{
		Email:    "lan@movu.app",
		Password: "WrongPass1",
	})
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestUserService(newFakeMailer(nil))

	_, err := svc.Login(context.Background(), &userdto.UserLoginInput{
		Email:    "missing@movu.app",
		Password: "Secret123",
	})
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, store := newTestUserService(newFakeMailer(nil))
	createTestUser(t, store, "dup@movu.app", "Secret123")

	_, err := store.InsertOne(context.Background(), models.User{
		FirstName: "Minh",
		LastName:  "Tran",
		Age:       30,
		Email:     "dup@movu.app",
		Password:  "Other456",
	})
	assert.ErrorIs(t, err, common.ErrMongoDuplicate)
}

func TestRequestResetPersistsToken(t *testing.T) {
	m := newFakeMailer(nil)
	svc, store := newTestUserService(m)
	user := createTestUser(t, store, "lan@movu.app", "Secret123")

	before := time.Now().Add(resetTokenTTL).UnixMilli()
	err := svc.RequestReset(context.Background(), "lan@movu.app")
	require.NoError(t, err)
	after := time.Now().Add(resetTokenTTL).UnixMilli()

	updated, err := store.FindOneById(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, updated.ResetPasswordToken, 64) // 32 byte hex
	assert.GreaterOrEqual(t, updated.ResetPasswordExpires, before)
	assert.LessOrEqual(t, updated.ResetPasswordExpires, after)

	m.waitForSend(t)
}

func TestRequestResetUnknownEmail(t *testing.T) {
	svc, _ := newTestUserService(newFakeMailer(nil))

	err := svc.RequestReset(context.Background(), "missing@movu.app")
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestRequestResetOverwritesPreviousToken(t *testing.T) {
	m := newFakeMailer(nil)
	svc, store := newTestUserService(m)
	user := createTestUser(t, store, "lan@movu.app", "Secret123")

	require.NoError(t, svc.RequestReset(context.Background(), "lan@movu.app"))
	m.waitForSend(t)
	first, err := store.FindOneById(context.Background(), user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RequestReset(context.Background(), "lan@movu.app"))
	m.waitForSend(t)
	second, err := store.FindOneById(context.Background(), user.ID)
	require.NoError(t, err)

	assert.NotEqual(t, first.ResetPasswordToken, second.ResetPasswordToken)

	// Token cũ không còn dùng được
	err = svc.ConfirmReset(context.Background(), first.ResetPasswordToken, "NewSecret1")
	assert.ErrorIs(t, err, common.ErrInvalidResetToken)
}

func TestRequestResetMailFailureKeepsToken(t *testing.T) {
	m := newFakeMailer(assert.AnError)
	svc, store := newTestUserService(m)
	user := createTestUser(t, store, "lan@movu.app", "Secret123")

	err := svc.RequestReset(context.Background(), "lan@movu.app")
	require.NoError(t, err)
	m.waitForSend(t)

	updated, err := store.FindOneById(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, updated.ResetPasswordToken)
}

func TestConfirmResetSuccess(t *testing.T) {
	m := newFakeMailer(nil)
	svc, store := newTestUserService(m)
	user := createTestUser(t, store, "lan@movu.app", "Secret123")

	require.NoError(t, svc.RequestReset(context.Background(), "lan@movu.app"))
	m.waitForSend(t)
	pending, err := store.FindOneById(context.Background(), user.ID)
	require.NoError(t, err)

	err = svc.ConfirmReset(context.Background(), pending.ResetPasswordToken, "NewSecret1")
	require.NoError(t, err)

	updated, err := store.FindOneById(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "NewSecret1", updated.Password)
	assert.Empty(t, updated.ResetPasswordToken)
	assert.Zero(t, updated.ResetPasswordExpires)

	// Token chỉ dùng được một lần
	err = svc.ConfirmReset(context.Background(), pending.ResetPasswordToken, "Another23")
	assert.ErrorIs(t, err, common.ErrInvalidResetToken)
}

func TestConfirmResetExpiredToken(t *testing.T) {
	m := newFakeMailer(nil)
	svc, store := newTestUserService(m)
	user := createTestUser(t, store, "lan@movu.app", "Secret123")

	// Gài token đã hết hạn trực tiếp vào store
	_, err := store.UpdateById(context.Background(), user.ID, bson.M{
		"resetPasswordToken":   "deadbeef",
		"resetPasswordExpires": time.Now().Add(-time.Minute).UnixMilli(),
	})
	require.NoError(t, err)

	err = svc.ConfirmReset(context.Background(), "deadbeef", "NewSecret1")
	assert.ErrorIs(t, err, common.ErrInvalidResetToken)
}

func TestConfirmResetUnknownToken(t *testing.T) {
	svc, _ := newTestUserService(newFakeMailer(nil))

	err := svc.ConfirmReset(context.Background(), "khong-ton-tai", "NewSecret1")
	assert.ErrorIs(t, err, common.ErrInvalidResetToken)
}
