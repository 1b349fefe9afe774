// Package cataloghdl - handler proxy danh mục video từ Pexels.
package cataloghdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "movu_api/internal/api/base/handler"
	catalogsvc "movu_api/internal/api/catalog/service"
)

// PexelsHandler forward request đến Pexels API.
// Response của Pexels được trả nguyên văn, không bọc trong envelope chuẩn.
type PexelsHandler struct {
	pexelsService *catalogsvc.PexelsService
}

// NewPexelsHandler tạo instance mới của PexelsHandler
func NewPexelsHandler() *PexelsHandler {
	return &PexelsHandler{
		pexelsService: catalogsvc.NewPexelsService(),
	}
}

// queryInt đọc một query param dạng số, trả về 0 khi thiếu hoặc sai định dạng
func queryInt(c fiber.Ctx, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}

// HandlePopular lấy danh sách video phổ biến từ Pexels
func (h *PexelsHandler) HandlePopular(c fiber.Ctx) error {
	body, err := h.pexelsService.FetchPopular(c.Context(), queryInt(c, "per_page"))
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Send(body)
}

// HandleSearch tìm kiếm video trên Pexels theo từ khóa
func (h *PexelsHandler) HandleSearch(c fiber.Ctx) error {
	body, err := h.pexelsService.Search(c.Context(), c.Query("query"), queryInt(c, "per_page"), queryInt(c, "page"))
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Send(body)
}
