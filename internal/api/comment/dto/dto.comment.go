package commentdto

// CommentCreateInput đầu vào thêm bình luận trên một video.
type CommentCreateInput struct {
	UserID  string `json:"userId" validate:"required,exists=users"`
	VideoID string `json:"videoId" validate:"required"`
	Text    string `json:"text" validate:"required,no_xss"`
}

// CommentUpdateInput đầu vào sửa nội dung bình luận.
// UserID xác định người yêu cầu, phải là chủ của bình luận.
type CommentUpdateInput struct {
	CommentID string `json:"commentId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
	Text      string `json:"text" validate:"required,no_xss"`
}

// CommentDeleteInput đầu vào xóa bình luận.
type CommentDeleteInput struct {
	CommentID string `json:"commentId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}
