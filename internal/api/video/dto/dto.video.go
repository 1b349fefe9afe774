package videodto

// VideoCreateInput đầu vào thêm video vào catalog.
type VideoCreateInput struct {
	PexelsID string `json:"pexelsId" validate:"required"`
	Title    string `json:"title" validate:"required,no_xss"`
	VideoURL string `json:"videoUrl" validate:"required,url"`
}

// VideoUpdateInput đầu vào cập nhật thông tin video.
type VideoUpdateInput struct {
	Title    string `json:"title" validate:"omitempty,no_xss"`
	VideoURL string `json:"videoUrl" validate:"omitempty,url"`
}
