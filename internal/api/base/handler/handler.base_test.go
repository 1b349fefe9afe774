package basehdl

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "movu_api/internal/api/base/service"
	"movu_api/internal/common"
	"movu_api/internal/global"
)

// catalogEntry là model tối giản cho test handler, có ràng buộc unique trên code
type catalogEntry struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code,omitempty" index:"unique"`
	Name      string             `json:"name" bson:"name,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type catalogEntryCreateInput struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type catalogEntryUpdateInput struct {
	Name string `json:"name" validate:"omitempty"`
}

// newEntryTestApp dựng một Fiber app với BaseHandler chạy trên store trong bộ nhớ
func newEntryTestApp() *fiber.App {
	global.InitValidator()

	store := basesvc.NewBaseServiceMemory[catalogEntry]()
	handler := NewBaseHandler[catalogEntry, catalogEntryCreateInput, catalogEntryUpdateInput](store)

	app := fiber.New()
	app.Post("/entries", handler.InsertOne)
	app.Get("/entries/:id", handler.FindOneById)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestInsertOneReturnsSuccessEnvelope(t *testing.T) {
	app := newEntryTestApp()

	resp := postJSON(t, app, "/entries", `{"code":"VID-001","name":"Video biển"}`)
	assert.Equal(t, common.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "charset=utf-8")

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "success", envelope["status"])
	assert.Equal(t, float64(common.StatusOK), envelope["code"])
	assert.Equal(t, common.MsgSuccess, envelope["message"])

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VID-001", data["code"])
}

func TestInsertOneDuplicateReturnsConflictEnvelope(t *testing.T) {
	app := newEntryTestApp()

	resp := postJSON(t, app, "/entries", `{"code":"VID-001","name":"Video biển"}`)
	require.Equal(t, common.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Vi phạm unique index phải trả về envelope Conflict, không lộ lỗi storage thô
	resp = postJSON(t, app, "/entries", `{"code":"VID-001","name":"Video khác"}`)
	assert.Equal(t, common.StatusConflict, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, common.ErrCodeDatabaseQuery.Code, envelope["code"])
	assert.Equal(t, common.MsgMongoDuplicate, envelope["message"])
}

func TestFindOneByIdUnknownReturnsNotFoundEnvelope(t *testing.T) {
	app := newEntryTestApp()

	req := httptest.NewRequest(http.MethodGet, "/entries/"+primitive.NewObjectID().Hex(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusNotFound, resp.StatusCode)

	var notFound *common.Error
	require.True(t, errors.As(common.ErrNotFound, &notFound))

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, notFound.Code.Code, envelope["code"])
	assert.Equal(t, notFound.Message, envelope["message"])
}

func TestInsertOneValidationFailureReturnsBadRequestEnvelope(t *testing.T) {
	app := newEntryTestApp()

	// Thiếu trường bắt buộc name
	resp := postJSON(t, app, "/entries", `{"code":"VID-002"}`)
	assert.Equal(t, common.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, common.ErrCodeValidationInput.Code, envelope["code"])
	assert.Equal(t, common.MsgValidationError, envelope["message"])
}
