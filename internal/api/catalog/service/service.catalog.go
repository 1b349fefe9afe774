// Package catalogsvc gọi Pexels API để lấy danh mục video.
package catalogsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"movu_api/config"
	"movu_api/internal/common"
	"movu_api/internal/global"
)

// defaultPopularPerPage là số video mặc định khi client không truyền per_page
const defaultPopularPerPage = 3

// PexelsService là client gọi Pexels REST API.
// Response từ Pexels được trả nguyên văn cho client, không parse lại cấu trúc.
type PexelsService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewPexelsService tạo instance mới của PexelsService từ config toàn cục
func NewPexelsService() *PexelsService {
	return NewPexelsServiceWithConfig(global.ServerConfig)
}

// NewPexelsServiceWithConfig tạo PexelsService với config được cung cấp (phục vụ test)
func NewPexelsServiceWithConfig(cfg *config.Configuration) *PexelsService {
	return &PexelsService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.PexelsBaseURL,
		apiKey:     cfg.PexelsAPIKey,
	}
}

// FetchPopular lấy danh sách video phổ biến từ Pexels.
// perPage <= 0 sẽ dùng giá trị mặc định.
func (s *PexelsService) FetchPopular(ctx context.Context, perPage int) (json.RawMessage, error) {
	if perPage <= 0 {
		perPage = defaultPopularPerPage
	}

	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))

	return s.doRequest(ctx, "/videos/popular", params)
}

// Search tìm kiếm video trên Pexels theo từ khóa
func (s *PexelsService) Search(ctx context.Context, query string, perPage, page int) (json.RawMessage, error) {
	if query == "" {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Từ khóa tìm kiếm không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}

	params := url.Values{}
	params.Set("query", query)
	if perPage > 0 {
		params.Set("per_page", strconv.Itoa(perPage))
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	return s.doRequest(ctx, "/videos/search", params)
}

// doRequest thực hiện GET request đến Pexels kèm API key và trả về body nguyên văn
func (s *PexelsService) doRequest(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	requestURL := fmt.Sprintf("%s%s?%s", s.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, common.NewError(common.ErrCodeBusinessUpstream, "Không thể tạo request đến Pexels", common.StatusInternalServerError, err)
	}
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("Gọi Pexels API thất bại")
		return nil, common.ErrUpstream
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("Không đọc được response từ Pexels")
		return nil, common.ErrUpstream
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"path":   path,
			"status": resp.StatusCode,
		}).Error("Pexels API trả về lỗi")
		return nil, common.ErrUpstream
	}

	return json.RawMessage(body), nil
}
