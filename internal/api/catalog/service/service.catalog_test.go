package catalogsvc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movu_api/config"
	"movu_api/internal/common"
)

// newTestService dựng một PexelsService trỏ về server giả lập
func newTestService(upstream *httptest.Server) *PexelsService {
	return NewPexelsServiceWithConfig(&config.Configuration{
		PexelsBaseURL: upstream.URL,
		PexelsAPIKey:  "test-api-key",
	})
}

func TestFetchPopularForwardsUpstreamBody(t *testing.T) {
	var gotPath, gotAuth, gotPerPage string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotPerPage = r.URL.Query().Get("per_page")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"videos":[{"id":123}],"total_results":1}`))
	}))
	defer upstream.Close()

	service := newTestService(upstream)

	body, err := service.FetchPopular(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "/videos/popular", gotPath)
	assert.Equal(t, "test-api-key", gotAuth)
	assert.Equal(t, "5", gotPerPage)
	assert.JSONEq(t, `{"videos":[{"id":123}],"total_results":1}`, string(body))
}

func TestFetchPopularDefaultsPerPage(t *testing.T) {
	var gotPerPage string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPerPage = r.URL.Query().Get("per_page")
		_, _ = w.Write([]byte(`{"videos":[]}`))
	}))
	defer upstream.Close()

	service := newTestService(upstream)

	_, err := service.FetchPopular(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "3", gotPerPage)
}

func TestSearchForwardsQueryParams(t *testing.T) {
	var gotQuery, gotPerPage, gotPage string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotPerPage = r.URL.Query().Get("per_page")
		gotPage = r.URL.Query().Get("page")
		_, _ = w.Write([]byte(`{"videos":[]}`))
	}))
	defer upstream.Close()

	service := newTestService(upstream)

	body, err := service.Search(context.Background(), "ocean", 10, 2)
	require.NoError(t, err)

	assert.Equal(t, "ocean", gotQuery)
	assert.Equal(t, "10", gotPerPage)
	assert.Equal(t, "2", gotPage)
	assert.True(t, json.Valid(body))
}

func TestSearchRequiresQuery(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("không được gọi upstream khi thiếu query")
	}))
	defer upstream.Close()

	service := newTestService(upstream)

	_, err := service.Search(context.Background(), "", 10, 1)
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
}

func TestUpstreamErrorStatusMapsToBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	service := newTestService(upstream)

	_, err := service.FetchPopular(context.Background(), 3)
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusBadGateway, appErr.StatusCode)
}

func TestUnreachableUpstreamMapsToBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // đóng ngay để mô phỏng upstream chết

	service := newTestService(upstream)

	_, err := service.Search(context.Background(), "ocean", 0, 0)
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.StatusBadGateway, appErr.StatusCode)
}
